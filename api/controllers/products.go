package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/luxtime/luxtime-backend/api/responses"
	"github.com/luxtime/luxtime-backend/api/validators"
	productsvc "github.com/luxtime/luxtime-backend/internal/products"
	"github.com/luxtime/luxtime-backend/pkg/enums"
	pkgerrors "github.com/luxtime/luxtime-backend/pkg/errors"
	"github.com/luxtime/luxtime-backend/pkg/logger"
	"github.com/luxtime/luxtime-backend/pkg/pagination"
	"github.com/luxtime/luxtime-backend/pkg/types"
)

const maxSearchLen = 120

// ListProducts serves the filtered storefront catalog.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		input, err := parseListInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, next, err := pagination.Page(products, productID, pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").
				WithDetails(map[string]any{"field": "cursor"}))
			return
		}

		responses.WriteList(w, page, types.ListMeta{Count: len(page), Total: len(products), NextCursor: next})
	}
}

// GetProduct serves one product by id.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), strings.TrimSpace(chi.URLParam(r, "productId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func productID(p productsvc.ProductDTO) string { return p.ID }

func parseListInput(r *http.Request) (productsvc.ListInput, error) {
	input := productsvc.ListInput{
		Brands:    validators.ParseQueryList(r, "brand"),
		Styles:    validators.ParseQueryList(r, "style"),
		Materials: validators.ParseQueryList(r, "material"),
		Query:     validators.SanitizeString(r.URL.Query().Get("q"), maxSearchLen),
		Sort:      enums.ProductSort(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sort")))),
	}

	var err error
	if input.MinPrice, err = validators.ParseQueryDecimal(r, "min_price"); err != nil {
		return input, err
	}
	if input.MaxPrice, err = validators.ParseQueryDecimal(r, "max_price"); err != nil {
		return input, err
	}
	if input.Featured, err = validators.ParseQueryBool(r, "featured"); err != nil {
		return input, err
	}
	if input.Bestseller, err = validators.ParseQueryBool(r, "bestseller"); err != nil {
		return input, err
	}
	if input.NewArrival, err = validators.ParseQueryBool(r, "new_arrival"); err != nil {
		return input, err
	}
	return input, nil
}
