package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

// jsonCopy round-trips a value through JSON so the fakes behave like a real
// store: what comes back is a detached, serializable copy.
func jsonCopy(dst, src interface{}) {
	b, err := json.Marshal(src)
	if err != nil {
		panic(fmt.Sprintf("fake store marshal: %v", err))
	}
	if err := json.Unmarshal(b, dst); err != nil {
		panic(fmt.Sprintf("fake store unmarshal: %v", err))
	}
}

type toastRecord struct {
	UserID   string
	Message  string
	Severity string
}

type fakeNotifier struct {
	mu     sync.Mutex
	toasts []toastRecord
}

func (n *fakeNotifier) Push(userID, message, severity string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toastRecord{UserID: userID, Message: message, Severity: severity})
}

func (n *fakeNotifier) last() *toastRecord {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return nil
	}
	return &n.toasts[len(n.toasts)-1]
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.toasts)
}

type fakeProductRepo struct {
	products map[string]entity.Product
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	out := p
	return &out, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Seed(ctx context.Context, products []entity.Product) error {
	if len(r.products) > 0 {
		return nil
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string][]byte
	saves int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string][]byte{}}
}

func (r *fakeCartRepo) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.carts[userID]
	if !ok {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
	}
	var cart entity.Cart
	jsonCopy(&cart, json.RawMessage(b))
	return &cart, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, _ := json.Marshal(cart)
	r.carts[cart.UserID] = b
	r.saves++
	return nil
}

type fakeWishlistRepo struct {
	lists map[string]*entity.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{lists: map[string]*entity.Wishlist{}}
}

func (r *fakeWishlistRepo) Get(ctx context.Context, userID string) (*entity.Wishlist, error) {
	if stored, ok := r.lists[userID]; ok {
		var out entity.Wishlist
		jsonCopy(&out, stored)
		return &out, nil
	}
	return &entity.Wishlist{UserID: userID, Products: []entity.Product{}}, nil
}

func (r *fakeWishlistRepo) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	var stored entity.Wishlist
	jsonCopy(&stored, wishlist)
	r.lists[wishlist.UserID] = &stored
	return nil
}

type fakeOrderRepo struct {
	histories map[string]*entity.OrderHistory
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{histories: map[string]*entity.OrderHistory{}}
}

func (r *fakeOrderRepo) Get(ctx context.Context, userID string) (*entity.OrderHistory, error) {
	if stored, ok := r.histories[userID]; ok {
		var out entity.OrderHistory
		jsonCopy(&out, stored)
		return &out, nil
	}
	return &entity.OrderHistory{UserID: userID, Orders: []entity.Order{}}, nil
}

func (r *fakeOrderRepo) Save(ctx context.Context, history *entity.OrderHistory) error {
	var stored entity.OrderHistory
	jsonCopy(&stored, history)
	r.histories[history.UserID] = &stored
	return nil
}

type fakeTicketRepo struct {
	lists map[string]*entity.TicketList
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{lists: map[string]*entity.TicketList{}}
}

func (r *fakeTicketRepo) Get(ctx context.Context, userID string) (*entity.TicketList, error) {
	if stored, ok := r.lists[userID]; ok {
		var out entity.TicketList
		jsonCopy(&out, stored)
		return &out, nil
	}
	return &entity.TicketList{UserID: userID, Tickets: []entity.Ticket{}}, nil
}

func (r *fakeTicketRepo) Save(ctx context.Context, list *entity.TicketList) error {
	var stored entity.TicketList
	jsonCopy(&stored, list)
	r.lists[list.UserID] = &stored
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.PaymentProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*entity.PaymentProfile{}}
}

func (r *fakeProfileRepo) Get(ctx context.Context, userID string) (*entity.PaymentProfile, error) {
	if stored, ok := r.profiles[userID]; ok {
		var out entity.PaymentProfile
		jsonCopy(&out, stored)
		return &out, nil
	}
	return &entity.PaymentProfile{
		UserID:         userID,
		Cards:          []entity.SavedCard{},
		PayoutAccounts: []entity.PayoutAccount{},
	}, nil
}

func (r *fakeProfileRepo) Save(ctx context.Context, profile *entity.PaymentProfile) error {
	var stored entity.PaymentProfile
	jsonCopy(&stored, profile)
	r.profiles[profile.UserID] = &stored
	return nil
}

type fakeCheckoutRepo struct {
	sessions map[string]*entity.CheckoutSession
}

func newFakeCheckoutRepo() *fakeCheckoutRepo {
	return &fakeCheckoutRepo{sessions: map[string]*entity.CheckoutSession{}}
}

func (r *fakeCheckoutRepo) Get(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	stored, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.NotFound("Checkout session", nil)
	}
	var out entity.CheckoutSession
	jsonCopy(&out, stored)
	return &out, nil
}

func (r *fakeCheckoutRepo) Save(ctx context.Context, session *entity.CheckoutSession) error {
	var stored entity.CheckoutSession
	jsonCopy(&stored, session)
	r.sessions[session.ID] = &stored
	return nil
}

type fakeContentRepo struct {
	content *entity.SiteContent
	saveErr error
	saves   int
}

func (r *fakeContentRepo) Get(ctx context.Context) (*entity.SiteContent, error) {
	if r.content == nil {
		return nil, nil
	}
	var out entity.SiteContent
	jsonCopy(&out, r.content)
	return &out, nil
}

func (r *fakeContentRepo) Save(ctx context.Context, content *entity.SiteContent) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	var stored entity.SiteContent
	jsonCopy(&stored, content)
	r.content = &stored
	return nil
}

type fakeGeoRepo struct {
	states  map[string]*entity.GeoState
	saveErr error
}

func newFakeGeoRepo() *fakeGeoRepo {
	return &fakeGeoRepo{states: map[string]*entity.GeoState{}}
}

func (r *fakeGeoRepo) Get(ctx context.Context, userID string) (*entity.GeoState, error) {
	if stored, ok := r.states[userID]; ok {
		var out entity.GeoState
		jsonCopy(&out, stored)
		return &out, nil
	}
	return &entity.GeoState{UserID: userID, History: []entity.GeoLocation{}}, nil
}

func (r *fakeGeoRepo) Save(ctx context.Context, state *entity.GeoState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	var stored entity.GeoState
	jsonCopy(&stored, state)
	r.states[state.UserID] = &stored
	return nil
}

type fakePhotoConnRepo struct {
	conns map[string]*entity.PhotoConnection
}

func newFakePhotoConnRepo() *fakePhotoConnRepo {
	return &fakePhotoConnRepo{conns: map[string]*entity.PhotoConnection{}}
}

func (r *fakePhotoConnRepo) Get(ctx context.Context, userID string) (*entity.PhotoConnection, error) {
	conn, ok := r.conns[userID]
	if !ok {
		return nil, nil
	}
	out := *conn
	return &out, nil
}

func (r *fakePhotoConnRepo) Save(ctx context.Context, conn *entity.PhotoConnection) error {
	stored := *conn
	r.conns[conn.UserID] = &stored
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	orders []entity.Order
}

func (p *fakePublisher) OrderPlaced(order *entity.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, *order)
}

func (p *fakePublisher) published() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.orders)
}

var testProducts = []entity.Product{
	{ID: "p-1", Title: "Wireless Earbuds", PriceUSD: 33.0, PriceTHB: 1180.0, OriginalPriceTHB: thb(1450.0), Category: "electronics", USImport: true},
	{ID: "p-2", Title: "Vitamin C Serum", PriceUSD: 16.5, PriceTHB: 590.0, Category: "beauty", USImport: true, FlashSale: true},
	{ID: "p-3", Title: "Denim Jacket", PriceUSD: 82.0, PriceTHB: 2940.0, Category: "fashion"},
}
