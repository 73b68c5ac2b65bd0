package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hettlage/superlists/internal/http/handler/api"
	"github.com/pkg/errors"
)

// CreateList starts a new list holding a first item.
func (c *Client) CreateList(ctx context.Context, text string) (*api.List, error) {
	var res api.GetListResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/lists", api.ItemTextRequest{Text: text}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.List, nil
}

func (c *Client) GetList(ctx context.Context, listID int64) (*api.List, error) {
	var res api.GetListResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/lists/"+strconv.FormatInt(listID, 10), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.List, nil
}

func (c *Client) AddItem(ctx context.Context, listID int64, text string) (*api.Item, error) {
	var res api.AddItemResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/lists/"+strconv.FormatInt(listID, 10)+"/items", api.ItemTextRequest{Text: text}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Item, nil
}
