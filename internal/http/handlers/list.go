package handlers

import (
	"adminboard/internal/auth"
	"adminboard/internal/listing"
	"adminboard/internal/services"

	"github.com/gin-gonic/gin"
)

// ListHandler adapts one resource's list operation to the shared wire
// contract: POST body {searchText?, page, pageSize} in,
// {result, message, totalPages} out.
func ListHandler[T any](list func(auth.Identity, listing.Params) (listing.Page[T], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p listing.Params
		if err := c.ShouldBindJSON(&p); err != nil {
			writeFailure(c, services.ValidationError{"body": "invalid payload"})
			return
		}

		identity, err := callerIdentity(c)
		if err != nil {
			writeFailure(c, err)
			return
		}

		page, err := list(identity, p)
		if err != nil {
			writeFailure(c, err)
			return
		}
		okList(c, page.Records, page.TotalPages)
	}
}

// DeleteHandler adapts a soft-delete mutation: PUT body {id} in, plain
// success envelope out. Deleting an already-deleted id still succeeds.
func DeleteHandler(del func(auth.Identity, int64) error, doneMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ID int64 `json:"id"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			writeFailure(c, services.ValidationError{"body": "invalid payload"})
			return
		}

		identity, err := callerIdentity(c)
		if err != nil {
			writeFailure(c, err)
			return
		}

		if err := del(identity, body.ID); err != nil {
			writeFailure(c, err)
			return
		}
		ok(c, doneMsg)
	}
}
