package forms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/application/resources"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/domain/repository"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

// Endpoints de envío.
const (
	OrderSubmitEndpoint    = "/webhook/order-submit"
	DeliveryStatusEndpoint = "/webhook-test/Dilivery-status"
	AddProductEndpoint     = "/webhook/Add-product"
	AddStaffEndpoint       = "/webhook/add-staff"
)

// DefaultStaffRole rol asignado cuando el alta de empleado no indica uno.
const DefaultStaffRole = "Booker"

// lookupTimeout tope de la búsqueda de pedido. Los POST usan el timeout del cliente.
const lookupTimeout = 10 * time.Second

// ErrDraftChanged el borrador de entrega cambió mientras la búsqueda estaba en curso; el
// resultado se descarta.
var ErrDraftChanged = errors.New("forms: el borrador cambió durante la búsqueda")

// UseCase borradores de pedido y de entrega del dispositivo, más los envíos de producto y
// empleado. Cada envío (exitoso o no) queda en el diario.
type UseCase struct {
	fetcher   ports.Fetcher
	journal   repository.SubmissionRepository
	catalogue *entity.Catalogue
	log       *logger.Logger
	now       func() time.Time

	mu       sync.Mutex
	order    OrderDraft
	delivery DeliveryDraft
	// Revisiones: suben con cada edición o reinicio del borrador correspondiente. Un resultado
	// de red solo se aplica si la revisión no cambió desde que salió la petición.
	orderRev    uint64
	deliveryRev uint64
}

// NewUseCase construye el caso de uso de formularios.
func NewUseCase(fetcher ports.Fetcher, journal repository.SubmissionRepository, catalogue *entity.Catalogue, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if catalogue == nil {
		catalogue = entity.DefaultCatalogue()
	}
	return &UseCase{
		fetcher:   fetcher,
		journal:   journal,
		catalogue: catalogue,
		log:       log.Named("forms"),
		now:       time.Now,
		delivery:  NewDeliveryDraft(),
	}
}

// Catalogue datos estáticos para los selectores.
func (uc *UseCase) Catalogue() *entity.Catalogue { return uc.catalogue }

// Reset descarta ambos borradores (cambio de identidad o logout).
func (uc *UseCase) Reset() {
	uc.mu.Lock()
	uc.order = OrderDraft{}
	uc.delivery = NewDeliveryDraft()
	uc.orderRev++
	uc.deliveryRev++
	uc.mu.Unlock()
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido
// ──────────────────────────────────────────────────────────────────────────────

// OrderDraft copia del borrador de pedido.
func (uc *UseCase) OrderDraft() OrderDraft {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.order.clone()
}

// AddOrderItem agrega un producto del catálogo; si ya estaba suma la cantidad.
func (uc *UseCase) AddOrderItem(productID string, qty int) (OrderDraft, error) {
	if strings.TrimSpace(productID) == "" {
		return uc.OrderDraft(), invalid(MsgSelectProduct)
	}
	p, ok := uc.catalogue.Product(productID)
	if !ok {
		return uc.OrderDraft(), invalid(MsgSelectProduct)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.orderRev++
	err := uc.order.Add(p, qty)
	return uc.order.clone(), err
}

// SetOrderQuantity reemplaza la cantidad de una línea.
func (uc *UseCase) SetOrderQuantity(productID string, qty int) (OrderDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.orderRev++
	err := uc.order.SetQuantity(productID, qty)
	return uc.order.clone(), err
}

// RemoveOrderItem quita una línea.
func (uc *UseCase) RemoveOrderItem(productID string) (OrderDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.orderRev++
	err := uc.order.Remove(productID)
	return uc.order.clone(), err
}

// SelectShop elige la tienda del pedido.
func (uc *UseCase) SelectShop(shopID string) (OrderDraft, error) {
	s, ok := uc.catalogue.Shop(shopID)
	if !ok {
		return uc.OrderDraft(), invalid(MsgSelectShop)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.orderRev++
	uc.order.Shop = &s
	return uc.order.clone(), nil
}

// ResetOrder vacía el borrador de pedido.
func (uc *UseCase) ResetOrder() {
	uc.mu.Lock()
	uc.order = OrderDraft{}
	uc.orderRev++
	uc.mu.Unlock()
}

// SubmitOrder envía el pedido a nombre de ident. Si el backend responde 2xx el borrador se vacía,
// salvo que haya sido editado o reiniciado mientras el envío estaba en curso.
func (uc *UseCase) SubmitOrder(ctx context.Context, ident *entity.Identity) (*entity.Submission, error) {
	if ident == nil {
		return nil, domain.ErrUnauthenticated
	}
	uc.mu.Lock()
	draft := uc.order.clone()
	rev := uc.orderRev
	uc.mu.Unlock()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	sub, err := uc.submit(ctx, entity.SubmissionOrder, OrderSubmitEndpoint, ident, draft.Total(), draft.payload(ident), MsgOrderFailed)
	if err != nil {
		return sub, err
	}
	uc.mu.Lock()
	if uc.orderRev == rev {
		uc.order = OrderDraft{}
		uc.orderRev++
	} else {
		uc.log.Info().Str("submission_id", sub.ID.String()).Msg("borrador de pedido editado durante el envío: se conserva")
	}
	uc.mu.Unlock()
	return sub, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrega
// ──────────────────────────────────────────────────────────────────────────────

// DeliveryDraft copia del borrador de entrega.
func (uc *UseCase) DeliveryDraft() DeliveryDraft {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.delivery.clone()
}

// UpdateDelivery actualiza la cabecera del borrador.
func (uc *UseCase) UpdateDelivery(in dto.DeliveryDraftRequest) (DeliveryDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.deliveryRev++
	err := uc.delivery.SetHeader(in.ShopID, in.OrderID, in.CashReceived, in.Status, in.HasReturns)
	return uc.delivery.clone(), err
}

// LookupOrder busca el pedido orderID y precarga tienda y efectivo. Ids de menos de
// MinOrderIDLookupLength caracteres no consultan al backend y devuelven nil. Si el borrador
// cambia mientras la búsqueda está en curso el resultado no se aplica y se devuelve
// ErrDraftChanged.
func (uc *UseCase) LookupOrder(ctx context.Context, orderID string) (*entity.OrderDetails, error) {
	orderID = strings.TrimSpace(orderID)
	uc.mu.Lock()
	if len(orderID) < MinOrderIDLookupLength {
		uc.delivery.Order = nil
		uc.deliveryRev++
		uc.mu.Unlock()
		return nil, nil
	}
	rev := uc.deliveryRev
	uc.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	body, err := uc.fetcher.Get(ctx, resources.OrderDetailsEndpoint, url.Values{resources.ParamOrderID: {orderID}})
	var details entity.OrderDetails
	if err == nil {
		details, err = resources.NormalizeOrderDetails(body)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.deliveryRev != rev {
		uc.log.Debug().Str("order_id", orderID).Msg("borrador editado durante la búsqueda: resultado descartado")
		return nil, ErrDraftChanged
	}
	uc.deliveryRev++
	if err != nil {
		uc.delivery.Order = nil
		uc.log.Info().Err(err).Str("order_id", orderID).Msg("pedido no encontrado")
		return nil, &SubmitError{Message: MsgOrderNotFound, Err: err}
	}
	uc.delivery.OrderID = orderID
	uc.delivery.ApplyOrder(details)
	return &details, nil
}

// PrefillReturns precarga un ítem de devolución por producto del pedido buscado.
func (uc *UseCase) PrefillReturns() (DeliveryDraft, int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.deliveryRev++
	n := uc.delivery.PrefillReturns()
	return uc.delivery.clone(), n
}

// AddReturnItem agrega un ítem de devolución.
func (uc *UseCase) AddReturnItem(in dto.ReturnItemRequest) (DeliveryDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.deliveryRev++
	err := uc.delivery.AddReturn(ReturnLine{
		ProductID: strings.TrimSpace(in.ProductID), ProductName: in.ProductName,
		Qty: in.Qty, Reason: in.Reason, Action: in.Action,
	})
	return uc.delivery.clone(), err
}

// UpdateReturnItem edita el ítem index.
func (uc *UseCase) UpdateReturnItem(index int, in dto.ReturnItemRequest) (DeliveryDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.deliveryRev++
	err := uc.delivery.UpdateReturn(index, in.Qty, in.Reason, in.Action)
	return uc.delivery.clone(), err
}

// RemoveReturnItem quita el ítem index.
func (uc *UseCase) RemoveReturnItem(index int) (DeliveryDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.deliveryRev++
	err := uc.delivery.RemoveReturn(index)
	return uc.delivery.clone(), err
}

// ResetDelivery vacía el borrador de entrega.
func (uc *UseCase) ResetDelivery() {
	uc.mu.Lock()
	uc.delivery = NewDeliveryDraft()
	uc.deliveryRev++
	uc.mu.Unlock()
}

// SubmitDelivery envía la actualización a nombre del rider ident. Si tiene éxito el borrador se
// vacía, salvo que haya cambiado mientras el envío estaba en curso.
func (uc *UseCase) SubmitDelivery(ctx context.Context, ident *entity.Identity) (*entity.Submission, error) {
	if ident == nil {
		return nil, domain.ErrUnauthenticated
	}
	uc.mu.Lock()
	draft := uc.delivery.clone()
	rev := uc.deliveryRev
	uc.mu.Unlock()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	sub, err := uc.submit(ctx, entity.SubmissionDelivery, DeliveryStatusEndpoint, ident, draft.CashReceived, draft.payload(ident), MsgDeliveryFailed)
	if err != nil {
		return sub, err
	}
	uc.mu.Lock()
	if uc.deliveryRev == rev {
		uc.delivery = NewDeliveryDraft()
		uc.deliveryRev++
	} else {
		uc.log.Info().Str("submission_id", sub.ID.String()).Msg("borrador de entrega editado durante el envío: se conserva")
	}
	uc.mu.Unlock()
	return sub, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto / empleado
// ──────────────────────────────────────────────────────────────────────────────

type productPayload struct {
	ProductID       string     `json:"Product_ID"`
	Name            string     `json:"Name"`
	VendorID        string     `json:"Vendor_ID"`
	VendorName      string     `json:"Vendor_Name"`
	CostPrice       jsonNumber `json:"Cost_Price"`
	SalePrice       jsonNumber `json:"Sale_Price"`
	CurrentStockQty jsonNumber `json:"Current_Stock_Qty"`
	Unit            string     `json:"Unit"`
}

// SubmitProduct da de alta un producto. Todos los campos son obligatorios y el proveedor se
// resuelve por nombre contra el catálogo.
func (uc *UseCase) SubmitProduct(ctx context.Context, ident *entity.Identity, in dto.ProductRequest) (*entity.Submission, error) {
	if ident == nil {
		return nil, domain.ErrUnauthenticated
	}
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.ProductID == "" || in.Name == "" || in.VendorName == "" || in.Unit == "" ||
		in.CostPrice.IsZero() || in.SalePrice.IsZero() || in.StockQty.IsZero() {
		return nil, invalid(MsgAllFieldsRequired)
	}
	vendor, ok := uc.catalogue.VendorByName(in.VendorName)
	if !ok {
		return nil, invalid(MsgUnknownVendor)
	}
	payload := productPayload{
		ProductID:       in.ProductID,
		Name:            in.Name,
		VendorID:        vendor.ID,
		VendorName:      vendor.Name,
		CostPrice:       jsonNumber(in.CostPrice),
		SalePrice:       jsonNumber(in.SalePrice),
		CurrentStockQty: jsonNumber(in.StockQty),
		Unit:            in.Unit,
	}
	amount := in.CostPrice.Mul(in.StockQty)
	return uc.submit(ctx, entity.SubmissionProduct, AddProductEndpoint, ident, amount, payload, MsgProductFailed)
}

type staffPayload struct {
	StaffID          string     `json:"Staff_ID"`
	Name             string     `json:"Name"`
	Role             string     `json:"Role"`
	Mobile           string     `json:"Mobile"`
	AssignedAreaID   string     `json:"Assigned_Area_ID"`
	AssignedAreaName string     `json:"Assigned_Area_Name"`
	BaseSalary       jsonNumber `json:"Base_Salary"`
}

// SubmitStaff da de alta un empleado. Staff_ID, Name, Mobile y Base_Salary son obligatorios;
// Role vacío pasa a DefaultStaffRole.
func (uc *UseCase) SubmitStaff(ctx context.Context, ident *entity.Identity, in dto.StaffRequest) (*entity.Submission, error) {
	if ident == nil {
		return nil, domain.ErrUnauthenticated
	}
	in.StaffID = strings.TrimSpace(in.StaffID)
	in.Name = strings.TrimSpace(in.Name)
	in.Mobile = strings.TrimSpace(in.Mobile)
	if in.StaffID == "" || in.Name == "" || in.Mobile == "" || in.BaseSalary.IsZero() {
		return nil, invalid(MsgStaffRequired)
	}
	if in.Role == "" {
		in.Role = DefaultStaffRole
	}
	payload := staffPayload{
		StaffID:          in.StaffID,
		Name:             in.Name,
		Role:             in.Role,
		Mobile:           in.Mobile,
		AssignedAreaID:   in.AssignedAreaID,
		AssignedAreaName: in.AssignedAreaName,
		BaseSalary:       jsonNumber(in.BaseSalary),
	}
	return uc.submit(ctx, entity.SubmissionStaff, AddStaffEndpoint, ident, in.BaseSalary, payload, MsgStaffFailed)
}

// RecentSubmissions últimos envíos del diario.
func (uc *UseCase) RecentSubmissions(ctx context.Context, limit int) ([]*entity.Submission, error) {
	return uc.journal.ListRecent(ctx, limit)
}

// submit hace el POST, registra el resultado en el diario y traduce el fallo a SubmitError.
func (uc *UseCase) submit(ctx context.Context, kind entity.SubmissionKind, endpoint string, ident *entity.Identity, amount decimal.Decimal, payload any, failMsg string) (*entity.Submission, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("forms: serializar %s: %w", kind, err)
	}

	postErr := uc.fetcher.Post(ctx, endpoint, json.RawMessage(raw))

	sub := &entity.Submission{
		ID:        uuid.New(),
		Kind:      kind,
		Endpoint:  endpoint,
		ActorID:   ident.ID,
		Amount:    amount,
		Payload:   raw,
		Succeeded: postErr == nil,
		CreatedAt: uc.now().UTC(),
	}
	if postErr != nil {
		sub.Error = postErr.Error()
	}
	// El diario es local: si falla se registra en el log y el envío sigue su curso.
	if err := uc.journal.Save(context.WithoutCancel(ctx), sub); err != nil {
		uc.log.Error().Err(err).Str("kind", string(kind)).Msg("no se pudo guardar en el diario")
	}

	if postErr != nil {
		uc.log.Warn().Err(postErr).Str("kind", string(kind)).Str("actor", ident.ID).Msg("envío rechazado")
		var fe *domain.FetchError
		if !errors.As(postErr, &fe) {
			postErr = domain.NewFetchError(domain.KindOf(postErr), 0, postErr)
		}
		return sub, &SubmitError{Message: failMsg, Err: postErr}
	}
	uc.log.Info().Str("kind", string(kind)).Str("actor", ident.ID).Str("submission_id", sub.ID.String()).Msg("envío aceptado")
	return sub, nil
}
