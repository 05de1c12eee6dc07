package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
)

// ideaCatalog is the built-in suggestion set. It is small enough that the
// mobile client ships a copy too; the server remains the source of truth.
var ideaCatalog = []domain.Idea{
	{
		IdeaID:      "planter-from-bottle",
		Title:       "Self-Watering Planter",
		Description: "Turn a plastic bottle into a self-watering planter for herbs.",
		Material:    "Plastic",
		Steps: []string{
			"Cut the bottle in half",
			"Invert the top half into the bottom",
			"Thread a strip of cloth through the cap as a wick",
			"Fill the top with soil and plant your seeds",
		},
		Video: "https://www.youtube.com/watch?v=planter-demo",
	},
	{
		IdeaID:      "mosaic-lamp",
		Title:       "Mosaic Jar Lamp",
		Description: "Decorate a glass jar with tissue-paper mosaic and add a fairy light.",
		Material:    "Glass",
		Steps: []string{
			"Clean the jar and remove labels",
			"Glue tissue-paper pieces to the outside",
			"Seal with a coat of diluted glue",
			"Drop in a battery fairy light",
		},
		Video: "https://www.youtube.com/watch?v=mosaic-lamp-demo",
	},
	{
		IdeaID:      "desk-organizer",
		Title:       "Desk Organizer",
		Description: "Stack cardboard boxes and tubes into a modular desk organizer.",
		Material:    "Cardboard",
		Steps: []string{
			"Collect boxes and tubes of different sizes",
			"Cut them to matching heights",
			"Glue them together on a cardboard base",
			"Paint or wrap with leftover paper",
		},
	},
	{
		IdeaID:      "wind-chime",
		Title:       "Aluminum Wind Chime",
		Description: "String flattened aluminum cans into a garden wind chime.",
		Material:    "Metal",
		Steps: []string{
			"Rinse and flatten the cans",
			"Punch a hole near the rim of each",
			"Hang them at staggered lengths from a ring",
		},
		Video: "https://www.youtube.com/watch?v=wind-chime-demo",
	},
}

type ideaService struct {
	catalog []domain.Idea
}

// NewIdeaService creates the idea-catalog service.
func NewIdeaService() portssvc.IdeaSvcFacade {
	return &ideaService{catalog: ideaCatalog}
}

var _ portssvc.IdeaSvcFacade = (*ideaService)(nil)

func (s *ideaService) ListIdeas(_ context.Context, material string) []domain.Idea {
	if material == "" {
		out := make([]domain.Idea, len(s.catalog))
		copy(out, s.catalog)
		return out
	}
	out := make([]domain.Idea, 0, len(s.catalog))
	for _, idea := range s.catalog {
		if strings.EqualFold(idea.Material, material) {
			out = append(out, idea)
		}
	}
	return out
}

func (s *ideaService) GetIdea(_ context.Context, ideaID string) (*domain.Idea, error) {
	for i := range s.catalog {
		if s.catalog[i].IdeaID == ideaID {
			idea := s.catalog[i]
			return &idea, nil
		}
	}
	return nil, fmt.Errorf("idea %q: %w", ideaID, apperrors.ErrNotFound)
}
