package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/hettlage/superlists/internal/core/model"
	"github.com/hettlage/superlists/internal/core/port"
	"github.com/hettlage/superlists/internal/metrics"
	"github.com/pkg/errors"
)

type ListManagerOptions struct {
	MaxItemLength int
}

type ListManagerOptionFunc func(opts *ListManagerOptions)

func WithListManagerMaxItemLength(maxLength int) ListManagerOptionFunc {
	return func(opts *ListManagerOptions) {
		opts.MaxItemLength = maxLength
	}
}

func NewListManagerOptions(funcs ...ListManagerOptionFunc) *ListManagerOptions {
	opts := &ListManagerOptions{
		MaxItemLength: 1024,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type ListManager struct {
	store         port.ListStore
	maxItemLength int
}

// NewList creates a list holding a first item.
func (m *ListManager) NewList(ctx context.Context, rawText string) (model.List, error) {
	text, err := m.NormalizeItemText(rawText)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	list, item, err := m.store.CreateList(ctx, text)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalListsCreated.Inc()
	metrics.TotalItemsCreated.Inc()

	slog.DebugContext(ctx, "list created", slog.String("list_id", list.ID().String()), slog.String("item_id", item.ID().String()))

	return list, nil
}

// AddItem appends an item to an existing list.
func (m *ListManager) AddItem(ctx context.Context, listID model.ListID, rawText string) (model.Item, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("list_id", listID.String()))

	text, err := m.NormalizeItemText(rawText)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	item, err := m.store.AddItem(ctx, listID, text)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalItemsCreated.Inc()

	slog.DebugContext(ctx, "item added", slog.String("item_id", item.ID().String()))

	return item, nil
}

// GetList returns a list along with its items, numbered in insertion order.
func (m *ListManager) GetList(ctx context.Context, listID model.ListID) (model.List, []model.PositionedItem, error) {
	list, err := m.store.GetListByID(ctx, listID)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	items, err := m.store.QueryItems(ctx, listID)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return list, model.Positioned(items), nil
}

// NormalizeItemText trims the submitted text and checks it can be stored
// as an item.
func (m *ListManager) NormalizeItemText(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if text == "" {
		metrics.TotalRejectedItems.WithLabelValues("empty").Inc()
		return "", errors.WithStack(ErrEmptyItem)
	}

	if m.maxItemLength > 0 && utf8.RuneCountInString(text) > m.maxItemLength {
		metrics.TotalRejectedItems.WithLabelValues("too_long").Inc()
		return "", errors.WithStack(ErrItemTooLong)
	}

	return text, nil
}

func NewListManager(store port.ListStore, funcs ...ListManagerOptionFunc) *ListManager {
	opts := NewListManagerOptions(funcs...)

	return &ListManager{
		store:         store,
		maxItemLength: opts.MaxItemLength,
	}
}
