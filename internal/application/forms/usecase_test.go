package forms_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/forms"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type post struct {
	endpoint string
	body     map[string]any
}

// recordingFetcher guarda cada POST decodificado; postErr se devuelve si no es nil.
// Con started/release no nil cada llamada avisa en started y espera release.
type recordingFetcher struct {
	mu      sync.Mutex
	posts   []post
	gets    []url.Values
	postErr error
	getBody string
	getErr  error

	started chan struct{}
	release chan struct{}

	postDeadline bool
}

func (f *recordingFetcher) hold() {
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
}

func (f *recordingFetcher) Get(_ context.Context, _ string, params url.Values) ([]byte, error) {
	f.hold()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, params)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return []byte(f.getBody), nil
}

func (f *recordingFetcher) Post(ctx context.Context, endpoint string, body any) error {
	f.hold()
	_, hasDeadline := ctx.Deadline()
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	f.mu.Lock()
	f.posts = append(f.posts, post{endpoint: endpoint, body: m})
	f.postDeadline = hasDeadline
	f.mu.Unlock()
	return f.postErr
}

var (
	salesman = &entity.Identity{ID: "BK-101", Role: entity.RoleSales, Name: "John Doe"}
	rider    = &entity.Identity{ID: "rider1", Role: entity.RoleRider, Name: "Ali"}
	admin    = &entity.Identity{ID: "admin", Role: entity.RoleAdmin, Name: "Admin User"}
)

func newUseCase(f *recordingFetcher) (*forms.UseCase, *storage.MemoryJournal) {
	j := storage.NewMemoryJournal(10)
	return forms.NewUseCase(f, j, nil, nil), j
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// gated fetcher que bloquea cada llamada hasta release.
func gated(getBody string) *recordingFetcher {
	return &recordingFetcher{getBody: getBody, started: make(chan struct{}), release: make(chan struct{})}
}

// inFlight corre fn en otra goroutine y vuelve cuando la llamada de red ya empezó.
func inFlight[T any](t *testing.T, f *recordingFetcher, fn func() (T, error)) <-chan result[T] {
	t.Helper()
	out := make(chan result[T], 1)
	go func() {
		v, err := fn()
		out <- result[T]{v, err}
	}()
	<-f.started
	return out
}

type result[T any] struct {
	val T
	err error
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestAddOrderItem_SumaCantidadDelMismoProducto(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})

	_, err := uc.AddOrderItem("P001", 2)
	require.NoError(t, err)
	draft, err := uc.AddOrderItem("P001", 3)
	require.NoError(t, err)

	require.Len(t, draft.Lines, 1)
	assert.Equal(t, 5, draft.Lines[0].Quantity)
	assert.True(t, d("510").Equal(draft.Total()), "5 × 102")
}

func TestAddOrderItem_Validaciones(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})

	_, err := uc.AddOrderItem("", 1)
	assert.Equal(t, forms.MsgSelectProduct, forms.UserMessage(err))

	_, err = uc.AddOrderItem("P999", 1)
	assert.Equal(t, forms.MsgSelectProduct, forms.UserMessage(err))

	_, err = uc.AddOrderItem("P001", 0)
	assert.Equal(t, forms.MsgQuantityMin, forms.UserMessage(err))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, uc.OrderDraft().Lines)
}

func TestSetOrderQuantity_YRemove(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})
	_, _ = uc.AddOrderItem("P002", 1)
	_, _ = uc.AddOrderItem("P003", 1)

	draft, err := uc.SetOrderQuantity("P002", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, draft.Lines[0].Quantity)

	_, err = uc.SetOrderQuantity("P002", 0)
	assert.Equal(t, forms.MsgQuantityMin, forms.UserMessage(err))

	draft, err = uc.RemoveOrderItem("P002")
	require.NoError(t, err)
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "P003", draft.Lines[0].Product.ID)

	_, err = uc.RemoveOrderItem("P002")
	assert.Equal(t, forms.MsgUnknownItem, forms.UserMessage(err))
}

func TestSubmitOrder_SinTiendaOSinProductos(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)

	_, err := uc.SubmitOrder(context.Background(), salesman)
	assert.Equal(t, forms.MsgSelectShop, forms.UserMessage(err))

	_, err = uc.SelectShop("SHP-003")
	require.NoError(t, err)
	_, err = uc.SubmitOrder(context.Background(), salesman)
	assert.Equal(t, forms.MsgAddProduct, forms.UserMessage(err))

	assert.Empty(t, f.posts, "la validación no llama al backend")
}

func TestSubmitOrder_PayloadYReinicioDelBorrador(t *testing.T) {
	f := &recordingFetcher{}
	uc, journal := newUseCase(f)
	_, _ = uc.SelectShop("SHP-003")
	_, _ = uc.AddOrderItem("P001", 2)
	_, _ = uc.AddOrderItem("P003", 1)

	sub, err := uc.SubmitOrder(context.Background(), salesman)
	require.NoError(t, err)
	assert.True(t, sub.Succeeded)
	assert.True(t, d("230.4").Equal(sub.Amount))

	require.Len(t, f.posts, 1)
	p := f.posts[0]
	assert.Equal(t, forms.OrderSubmitEndpoint, p.endpoint)
	assert.Equal(t, "SHP-003", p.body["Shop_ID"])
	assert.Equal(t, "BK-101", p.body["Salesman_ID"])
	assert.Equal(t, "John Doe", p.body["Salesman_name"])
	assert.Equal(t, "Sarah Khan", p.body["Shop_Owner_Name"])
	assert.Equal(t, 230.4, p.body["Total_Amount"], "el total viaja como número")
	assert.Equal(t, []any{
		map[string]any{"Product_ID": "P001", "Qty": float64(2)},
		map[string]any{"Product_ID": "P003", "Qty": float64(1)},
	}, p.body["Items"])

	draft := uc.OrderDraft()
	assert.Nil(t, draft.Shop)
	assert.Empty(t, draft.Lines)

	recent, err := journal.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.SubmissionOrder, recent[0].Kind)
}

func TestSubmitOrder_FalloConservaBorradorYRegistra(t *testing.T) {
	f := &recordingFetcher{postErr: domain.NewFetchError(domain.FailureServer, 500, errors.New("boom"))}
	uc, journal := newUseCase(f)
	_, _ = uc.SelectShop("SHP-001")
	_, _ = uc.AddOrderItem("P004", 1)

	sub, err := uc.SubmitOrder(context.Background(), salesman)
	require.Error(t, err)
	assert.Equal(t, forms.MsgOrderFailed, forms.UserMessage(err))
	assert.Equal(t, domain.FailureServer, domain.KindOf(err))
	require.NotNil(t, sub)
	assert.False(t, sub.Succeeded)
	assert.NotEmpty(t, sub.Error)

	assert.Len(t, uc.OrderDraft().Lines, 1, "el borrador sobrevive al fallo")

	recent, _ := journal.ListRecent(context.Background(), 5)
	require.Len(t, recent, 1)
	assert.False(t, recent[0].Succeeded)
}

func TestSubmitOrder_SinIdentidad(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})
	_, err := uc.SubmitOrder(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrega
// ──────────────────────────────────────────────────────────────────────────────

const orderDetailsBody = `{"order":{"order_id":"ORD-123456","shop_id":"SHP-004","total_amount":1500},
"products":[{"product_id":"P001","product_name":"Coca-Cola 330ml","quantity":10},
{"product_id":"P005","product_name":"Milk 1L","quantity":3}]}`

func TestLookupOrder_IdCortoNoConsulta(t *testing.T) {
	f := &recordingFetcher{getBody: orderDetailsBody}
	uc, _ := newUseCase(f)

	details, err := uc.LookupOrder(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Nil(t, details)
	assert.Empty(t, f.gets)
}

func TestLookupOrder_PrecargaTiendaYEfectivo(t *testing.T) {
	f := &recordingFetcher{getBody: orderDetailsBody}
	uc, _ := newUseCase(f)

	details, err := uc.LookupOrder(context.Background(), "ORD-123456")
	require.NoError(t, err)
	require.NotNil(t, details)
	require.Len(t, f.gets, 1)
	assert.Equal(t, "ORD-123456", f.gets[0].Get("orderId"))

	draft := uc.DeliveryDraft()
	assert.Equal(t, "SHP-004", draft.ShopID)
	assert.Equal(t, "ORD-123456", draft.OrderID)
	assert.True(t, d("1500").Equal(draft.CashReceived))

	draft, n := uc.PrefillReturns()
	assert.Equal(t, 2, n)
	assert.True(t, draft.HasReturns)
	assert.Equal(t, 10, draft.Returns[0].MaxQty)
	assert.Equal(t, entity.ReturnActionRestock, draft.Returns[0].Action)
}

func TestLookupOrder_NoEncontrado(t *testing.T) {
	f := &recordingFetcher{getBody: `{"message":"nothing"}`}
	uc, _ := newUseCase(f)

	details, err := uc.LookupOrder(context.Background(), "ORD-999999")
	assert.Nil(t, details)
	assert.Equal(t, forms.MsgOrderNotFound, forms.UserMessage(err))
	assert.Nil(t, uc.DeliveryDraft().Order)
}

func TestUpdateReturnItem_NoSuperaLaCantidadPedida(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{getBody: orderDetailsBody})
	_, err := uc.LookupOrder(context.Background(), "ORD-123456")
	require.NoError(t, err)
	uc.PrefillReturns()

	_, err = uc.UpdateReturnItem(1, dto.ReturnItemRequest{Qty: 4, Reason: "Expired"})
	assert.Equal(t, forms.MsgReturnExceedsQty, forms.UserMessage(err))

	draft, err := uc.UpdateReturnItem(1, dto.ReturnItemRequest{Qty: 3, Reason: "Expired", Action: entity.ReturnActionDiscard})
	require.NoError(t, err)
	assert.Equal(t, 3, draft.Returns[1].Qty)
	assert.Equal(t, entity.ReturnActionDiscard, draft.Returns[1].Action)

	_, err = uc.UpdateReturnItem(0, dto.ReturnItemRequest{Qty: 1, Reason: "Expired", Action: "Burn"})
	assert.Equal(t, forms.MsgInvalidAction, forms.UserMessage(err))

	_, err = uc.UpdateReturnItem(7, dto.ReturnItemRequest{Qty: 1, Reason: "Expired"})
	assert.Equal(t, forms.MsgUnknownItem, forms.UserMessage(err))
}

func TestSubmitDelivery_CamposObligatorios(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)

	_, err := uc.SubmitDelivery(context.Background(), rider)
	assert.Equal(t, forms.MsgRequiredFields, forms.UserMessage(err))

	_, err = uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-001", OrderID: "ORD-1", Status: "Lost"})
	assert.Equal(t, forms.MsgInvalidStatus, forms.UserMessage(err))

	_, err = uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-001", OrderID: "ORD-1", Status: entity.DeliveryStatusPartialReturn, HasReturns: true})
	require.NoError(t, err)
	_, err = uc.SubmitDelivery(context.Background(), rider)
	assert.Equal(t, forms.MsgReturnsMissing, forms.UserMessage(err))

	assert.Empty(t, f.posts)
}

func TestSubmitDelivery_SoloItemsCompletos(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)

	_, err := uc.UpdateDelivery(dto.DeliveryDraftRequest{
		ShopID: "SHP-002", OrderID: "ORD-777", CashReceived: d("900"),
		Status: entity.DeliveryStatusPartialReturn, HasReturns: true,
	})
	require.NoError(t, err)
	_, err = uc.AddReturnItem(dto.ReturnItemRequest{ProductID: "P002", Qty: 2, Reason: "Damaged"})
	require.NoError(t, err)

	_, err = uc.AddReturnItem(dto.ReturnItemRequest{ProductID: "P003", Qty: 0, Reason: "Damaged"})
	assert.Equal(t, forms.MsgReturnFields, forms.UserMessage(err))

	sub, err := uc.SubmitDelivery(context.Background(), rider)
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionDelivery, sub.Kind)

	require.Len(t, f.posts, 1)
	p := f.posts[0]
	assert.Equal(t, forms.DeliveryStatusEndpoint, p.endpoint)
	assert.Equal(t, "SHP-002", p.body["shop_id"])
	assert.Equal(t, "ORD-777", p.body["order_id"])
	assert.Equal(t, float64(900), p.body["cash_received"])
	assert.Equal(t, "rider1", p.body["rider_id"])
	assert.Equal(t, "Ali", p.body["rider_name"])
	items := p.body["return_items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "P002", items[0].(map[string]any)["product_id"])
	assert.Equal(t, "Restock", items[0].(map[string]any)["action"])

	assert.Equal(t, entity.DeliveryStatusDelivered, uc.DeliveryDraft().Status, "el borrador vuelve a su estado inicial")
}

func TestSubmitDelivery_SinDevolucionesEnviaListaVacia(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)
	_, err := uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-002", OrderID: "ORD-1", CashReceived: d("10")})
	require.NoError(t, err)

	_, err = uc.SubmitDelivery(context.Background(), rider)
	require.NoError(t, err)
	assert.Equal(t, []any{}, f.posts[0].body["return_items"])
	assert.Equal(t, entity.DeliveryStatusDelivered, f.posts[0].body["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto / empleado
// ──────────────────────────────────────────────────────────────────────────────

func validProduct() dto.ProductRequest {
	return dto.ProductRequest{
		ProductID: "P031", Name: "Green Tea", VendorName: "Unilever Pakistan",
		CostPrice: d("80"), SalePrice: d("100"), StockQty: d("50"), Unit: "box",
	}
}

func TestSubmitProduct_ResuelveProveedor(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)

	sub, err := uc.SubmitProduct(context.Background(), admin, validProduct())
	require.NoError(t, err)
	assert.True(t, d("4000").Equal(sub.Amount))

	require.Len(t, f.posts, 1)
	body := f.posts[0].body
	assert.Equal(t, forms.AddProductEndpoint, f.posts[0].endpoint)
	assert.Equal(t, "V005", body["Vendor_ID"])
	assert.Equal(t, "Unilever Pakistan", body["Vendor_Name"])
	assert.Equal(t, float64(80), body["Cost_Price"])
	assert.Equal(t, float64(50), body["Current_Stock_Qty"])
}

func TestSubmitProduct_CamposFaltantes(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})

	cases := map[string]func(*dto.ProductRequest){
		"sin id":        func(p *dto.ProductRequest) { p.ProductID = " " },
		"sin nombre":    func(p *dto.ProductRequest) { p.Name = "" },
		"sin costo":     func(p *dto.ProductRequest) { p.CostPrice = decimal.Zero },
		"sin stock":     func(p *dto.ProductRequest) { p.StockQty = decimal.Zero },
		"sin unidad":    func(p *dto.ProductRequest) { p.Unit = "" },
		"sin proveedor": func(p *dto.ProductRequest) { p.VendorName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := validProduct()
			mutate(&p)
			_, err := uc.SubmitProduct(context.Background(), admin, p)
			assert.Equal(t, forms.MsgAllFieldsRequired, forms.UserMessage(err))
		})
	}

	p := validProduct()
	p.VendorName = "Acme"
	_, err := uc.SubmitProduct(context.Background(), admin, p)
	assert.Equal(t, forms.MsgUnknownVendor, forms.UserMessage(err))
}

func TestSubmitStaff_RolPorDefecto(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)

	_, err := uc.SubmitStaff(context.Background(), admin, dto.StaffRequest{StaffID: "BK-120", Name: "Zara", Mobile: "0300"})
	assert.Equal(t, forms.MsgStaffRequired, forms.UserMessage(err))

	_, err = uc.SubmitStaff(context.Background(), admin, dto.StaffRequest{
		StaffID: "BK-120", Name: "Zara", Mobile: "0300", BaseSalary: d("45000"),
	})
	require.NoError(t, err)
	require.Len(t, f.posts, 1)
	assert.Equal(t, forms.AddStaffEndpoint, f.posts[0].endpoint)
	assert.Equal(t, "Booker", f.posts[0].body["Role"])
	assert.Equal(t, float64(45000), f.posts[0].body["Base_Salary"])
}

func TestReset_DescartaBorradores(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})
	_, _ = uc.AddOrderItem("P001", 1)
	_, _ = uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-001", OrderID: "ORD-1"})

	uc.Reset()

	assert.Empty(t, uc.OrderDraft().Lines)
	assert.Empty(t, uc.DeliveryDraft().ShopID)
}

func TestRecentSubmissions_MasRecientePrimero(t *testing.T) {
	uc, _ := newUseCase(&recordingFetcher{})
	_, err := uc.SubmitProduct(context.Background(), admin, validProduct())
	require.NoError(t, err)
	_, err = uc.SubmitStaff(context.Background(), admin, dto.StaffRequest{StaffID: "X", Name: "Y", Mobile: "1", BaseSalary: d("1")})
	require.NoError(t, err)

	recent, err := uc.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, entity.SubmissionStaff, recent[0].Kind)
	assert.Equal(t, entity.SubmissionProduct, recent[1].Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Respuestas que llegan después de una edición
// ──────────────────────────────────────────────────────────────────────────────

func TestLookupOrder_ResetDuranteLaBusquedaNoSobrescribe(t *testing.T) {
	f := gated(orderDetailsBody)
	uc, _ := newUseCase(f)

	done := inFlight(t, f, func() (*entity.OrderDetails, error) {
		return uc.LookupOrder(context.Background(), "ORD-123456")
	})
	uc.Reset()
	close(f.release)

	res := <-done
	assert.ErrorIs(t, res.err, forms.ErrDraftChanged)
	assert.Nil(t, res.val)
	draft := uc.DeliveryDraft()
	assert.Empty(t, draft.OrderID, "el borrador reiniciado no recibe el pedido buscado")
	assert.Empty(t, draft.ShopID)
	assert.Nil(t, draft.Order)
}

func TestLookupOrder_OtroPedidoDuranteLaBusquedaSeConserva(t *testing.T) {
	f := gated(orderDetailsBody)
	uc, _ := newUseCase(f)

	done := inFlight(t, f, func() (*entity.OrderDetails, error) {
		return uc.LookupOrder(context.Background(), "ORD-123456")
	})
	_, err := uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-001", OrderID: "ORD-654321"})
	require.NoError(t, err)
	close(f.release)

	res := <-done
	assert.ErrorIs(t, res.err, forms.ErrDraftChanged)
	draft := uc.DeliveryDraft()
	assert.Equal(t, "ORD-654321", draft.OrderID)
	assert.Equal(t, "SHP-001", draft.ShopID)
}

func TestSubmitOrder_EdicionDuranteElEnvioSeConserva(t *testing.T) {
	f := gated("")
	uc, _ := newUseCase(f)
	_, _ = uc.SelectShop("SHP-003")
	_, _ = uc.AddOrderItem("P001", 2)

	done := inFlight(t, f, func() (*entity.Submission, error) {
		return uc.SubmitOrder(context.Background(), salesman)
	})
	_, err := uc.AddOrderItem("P005", 1)
	require.NoError(t, err)
	close(f.release)

	res := <-done
	require.NoError(t, res.err)
	assert.True(t, res.val.Succeeded)
	require.Len(t, f.posts, 1)
	assert.Len(t, f.posts[0].body["Items"], 1, "se envía el borrador tal como estaba al salir")

	draft := uc.OrderDraft()
	require.Len(t, draft.Lines, 2, "la edición posterior no se pierde")
	assert.Equal(t, "P005", draft.Lines[1].Product.ID)
}

func TestSubmitOrder_SinEdicionesVaciaElBorrador(t *testing.T) {
	f := gated("")
	uc, _ := newUseCase(f)
	_, _ = uc.SelectShop("SHP-003")
	_, _ = uc.AddOrderItem("P001", 2)

	done := inFlight(t, f, func() (*entity.Submission, error) {
		return uc.SubmitOrder(context.Background(), salesman)
	})
	_ = uc.OrderDraft()
	close(f.release)

	require.NoError(t, (<-done).err)
	assert.Empty(t, uc.OrderDraft().Lines, "leer el borrador no cuenta como edición")
}

func TestSubmitDelivery_EdicionDuranteElEnvioSeConserva(t *testing.T) {
	f := gated("")
	uc, _ := newUseCase(f)
	_, err := uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-002", OrderID: "ORD-777", CashReceived: d("900")})
	require.NoError(t, err)

	done := inFlight(t, f, func() (*entity.Submission, error) {
		return uc.SubmitDelivery(context.Background(), rider)
	})
	_, err = uc.UpdateDelivery(dto.DeliveryDraftRequest{ShopID: "SHP-004", OrderID: "ORD-888", CashReceived: d("50")})
	require.NoError(t, err)
	close(f.release)

	res := <-done
	require.NoError(t, res.err)
	require.Len(t, f.posts, 1)
	assert.Equal(t, "ORD-777", f.posts[0].body["order_id"])

	draft := uc.DeliveryDraft()
	assert.Equal(t, "ORD-888", draft.OrderID, "la entrega siguiente no se borra")
	assert.Equal(t, "SHP-004", draft.ShopID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Timeout de los envíos
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_RespetaElTimeoutDelCliente(t *testing.T) {
	f := &recordingFetcher{}
	uc, _ := newUseCase(f)

	_, err := uc.SubmitProduct(context.Background(), admin, validProduct())
	require.NoError(t, err)
	assert.False(t, f.postDeadline, "el caso de uso no agrega un plazo propio al POST")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	_, err = uc.SubmitProduct(ctx, admin, validProduct())
	require.NoError(t, err)
	assert.True(t, f.postDeadline, "el plazo del llamador llega al POST")
}
