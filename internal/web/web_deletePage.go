package web

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-matal/internal/models"
	"github.com/go-while/go-matal/internal/store"
)

// deleteProverbSubmit removes exactly the targeted record, leaving the
// relative order of the remaining records untouched
func (s *WebServer) deleteProverbSubmit(c *gin.Context) {
	id, err := parseProverbID(c)
	if err != nil {
		redirectWithError(c, "/", "Invalid proverb ID")
		return
	}

	err = s.Store.Mutate(func(proverbs []models.Proverb) ([]models.Proverb, error) {
		kept := make([]models.Proverb, 0, len(proverbs))
		for i := range proverbs {
			if proverbs[i].ID != id {
				kept = append(kept, proverbs[i])
			}
		}
		if len(kept) == len(proverbs) {
			return nil, store.ErrNotFound
		}
		return kept, nil
	})
	if errors.Is(err, store.ErrNotFound) {
		redirectWithError(c, "/proverb/"+strconv.Itoa(id), "Proverb not found")
		return
	}
	if err != nil {
		log.Printf("[WEB]: Failed to delete proverb %d: %v", id, err)
		redirectWithError(c, "/proverb/"+strconv.Itoa(id), "Failed to delete proverb")
		return
	}

	redirectWithSuccess(c, "/", "Proverb deleted successfully")
}
