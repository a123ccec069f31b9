package out

// CartSource is the live cart the gateway adapts. The cart manager
// satisfies it directly.
type CartSource interface {
	Empty() bool
	Clear()
}

// CartGateway narrows the cart to the two things checkout needs:
// knowing whether there is anything to order, and clearing the local
// copy once the backend has built the order from the server cart.
type CartGateway struct {
	cart CartSource
}

func NewCartGateway(cart CartSource) CartGateway {
	return CartGateway{cart: cart}
}

func (g CartGateway) Empty() bool { return g.cart.Empty() }

func (g CartGateway) Clear() { g.cart.Clear() }
