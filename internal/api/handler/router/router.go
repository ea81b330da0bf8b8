package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/jasonco/storefront-analytics/pkg/apiErrors"
)

// WithRoutes registers routes when the router is built
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Route struct {
	Path    string
	Method  string
	Handler http.Handler
	// Middlewares wrap only this route. The first one runs first.
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router     *httprouter.Router
	registered []string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	r := &Router{router: httprouter.New()}
	r.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found", nil)
	})
	r.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", nil)
	})

	for _, config := range configs {
		config(r)
	}

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.registered = append(r.registered, route.Method+" "+route.Path)
	}
}

// Routes lists the registered "METHOD path" pairs, sorted
func (r *Router) Routes() []string {
	routes := append([]string(nil), r.registered...)
	sort.Strings(routes)
	return routes
}
