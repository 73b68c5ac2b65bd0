package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assets embed.FS

// Assets returns the static files served under /static/.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}

	return sub
}

func NewHandler() http.Handler {
	return http.FileServerFS(Assets())
}
