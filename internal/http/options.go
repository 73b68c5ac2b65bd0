package http

import (
	"log/slog"
	"net/http"
)

type Middleware func(http.Handler) http.Handler

type Options struct {
	Address     string
	Logger      *slog.Logger
	Mounts      map[string]http.Handler
	Middlewares []Middleware
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:     ":8000",
		Logger:      slog.Default(),
		Mounts:      map[string]http.Handler{},
		Middlewares: make([]Middleware, 0),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMiddlewares appends middlewares applied to every request, the first
// one being the outermost.
func WithMiddlewares(middlewares ...Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}
