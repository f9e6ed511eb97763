package forms

import (
	"errors"

	"github.com/jhoicas/smart-distribution/internal/domain"
)

// Mensajes de validación mostrados en los formularios.
const (
	MsgSelectProduct     = "Please select a product"
	MsgQuantityMin       = "Quantity must be at least 1"
	MsgSelectShop        = "Please select a shop"
	MsgAddProduct        = "Please add at least one product"
	MsgRequiredFields    = "Please fill all required fields"
	MsgReturnFields      = "Please fill all return item fields"
	MsgReturnsMissing    = "Please add return items or uncheck 'Has Return Items'"
	MsgReturnExceedsQty  = "Return quantity cannot exceed the ordered quantity"
	MsgInvalidStatus     = "Please select a valid delivery status"
	MsgInvalidAction     = "Please select a valid return action"
	MsgAllFieldsRequired = "All fields required"
	MsgUnknownVendor     = "Please select a vendor from the list"
	MsgStaffRequired     = "Please fill in all required fields"
	MsgOrderNotFound     = "Order not found. Please check Order ID."
	MsgUnknownItem       = "Item not found in the draft"
)

// Mensajes de resultado de cada envío.
const (
	MsgOrderSubmitted    = "Order submitted successfully! You can create another order or go back to dashboard."
	MsgOrderFailed       = "Failed to submit order. Please try again."
	MsgDeliverySubmitted = "Delivery status updated successfully!"
	MsgDeliveryFailed    = "Failed to update delivery status. Please try again."
	MsgProductSubmitted  = "Product Added Successfully!"
	MsgProductFailed     = "Failed: Error uploading product"
	MsgStaffSubmitted    = "Employee Added Successfully!"
	MsgStaffFailed       = "Failed to add employee"
)

// ValidationError entrada rechazada antes de llamar al backend. Message es apto para el usuario.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// SubmitError el backend rechazó o no recibió el envío.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *SubmitError) Unwrap() error { return e.Err }

// UserMessage texto para el usuario de un error devuelto por este paquete.
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
