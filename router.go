package gifbot

import "context"

// Router matches messages to routes.
type Router interface {
	Match(ctx context.Context, match *RouteMatch) (bool, context.Context)
	NewRoute() *Route
	Hear(regex string) *Route
	Messages(types ...MessageType) *Route
	SetBotID(botID string)
}

// SimpleRouter tries its routes in the order they were added.
type SimpleRouter struct {
	routes    []*Route
	botUserID string
}

// Match returns the first route that matches the message in ctx.
func (r *SimpleRouter) Match(ctx context.Context, match *RouteMatch) (bool, context.Context) {
	for _, route := range r.routes {
		if matched, newCtx := route.Match(ctx, match); matched {
			return true, newCtx
		}
	}
	return false, ctx
}

// NewRoute registers an empty route.
func (r *SimpleRouter) NewRoute() *Route {
	route := &Route{botUserID: r.botUserID}
	r.routes = append(r.routes, route)
	return route
}

// Hear registers a new route with a regexp matcher for the message text.
func (r *SimpleRouter) Hear(regex string) *Route {
	return r.NewRoute().Hear(regex)
}

// Messages registers a new route with a matcher for the given message types.
func (r *SimpleRouter) Messages(types ...MessageType) *Route {
	return r.NewRoute().Messages(types...)
}

// SetBotID sets the bot id on the router and every route already registered.
func (r *SimpleRouter) SetBotID(botID string) {
	r.botUserID = botID
	for _, route := range r.routes {
		route.setBotID(botID)
	}
}

var _ Router = (*SimpleRouter)(nil)
