package cart

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	cartdto "github.com/luxtime/luxtime-backend/api/controllers/cart/dto"
	"github.com/luxtime/luxtime-backend/api/middleware"
	"github.com/luxtime/luxtime-backend/api/responses"
	"github.com/luxtime/luxtime-backend/api/validators"
	cartsvc "github.com/luxtime/luxtime-backend/internal/cart"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
)

// Engines hands out the engine that owns a shopper's cart.
type Engines interface {
	Engine(ctx context.Context, owner string) (*cartsvc.Engine, error)
}

// ProductSource resolves catalog ids into the snapshot stored on a line item.
type ProductSource interface {
	CartProduct(ctx context.Context, id string) (cartsvc.Product, error)
}

// CartFetch returns the shopper's current cart.
func CartFetch(engines Engines, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFor(r, engines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCart(engine.Owner(), engine.State()))
	}
}

// CartAddItem snapshots a catalog product into the cart.
func CartAddItem(engines Engines, products ProductSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		engine, err := engineFor(r, engines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.CartProduct(r.Context(), strings.TrimSpace(payload.ProductID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := engine.Add(r.Context(), product, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCart(engine.Owner(), state))
	}
}

// CartUpdateItem changes the quantity of one line.
func CartUpdateItem(engines Engines, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFor(r, engines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartdto.UpdateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := engine.UpdateQuantity(r.Context(), productIDParam(r), *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCart(engine.Owner(), state))
	}
}

// CartRemoveItem drops one line. Removing an absent product is not an error.
func CartRemoveItem(engines Engines, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFor(r, engines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := engine.Remove(r.Context(), productIDParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCart(engine.Owner(), state))
	}
}

// CartClear empties the cart.
func CartClear(engines Engines, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFor(r, engines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := engine.Clear(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCart(engine.Owner(), state))
	}
}

// CartReplace swaps the whole cart for the posted lines.
func CartReplace(engines Engines, products ProductSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		engine, err := engineFor(r, engines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartdto.ReplaceCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		next, err := toLoadState(r.Context(), products, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := engine.Load(r.Context(), next)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCart(engine.Owner(), state))
	}
}

func engineFor(r *http.Request, engines Engines) (*cartsvc.Engine, error) {
	if engines == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable")
	}
	owner := middleware.CartOwnerFromContext(r.Context())
	if owner == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart owner is required")
	}
	return engines.Engine(r.Context(), owner)
}

func productIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "productId"))
}
