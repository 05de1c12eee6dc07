package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/services"
)

func TestIdeaService_ListIdeas(t *testing.T) {
	svc := services.NewIdeaService()
	ctx := context.Background()

	all := svc.ListIdeas(ctx, "")
	require.NotEmpty(t, all)

	plastic := svc.ListIdeas(ctx, "plastic")
	require.NotEmpty(t, plastic)
	for _, idea := range plastic {
		assert.Equal(t, "Plastic", idea.Material)
	}

	assert.Empty(t, svc.ListIdeas(ctx, "unobtainium"))
}

func TestIdeaService_GetIdea(t *testing.T) {
	svc := services.NewIdeaService()
	ctx := context.Background()

	all := svc.ListIdeas(ctx, "")
	require.NotEmpty(t, all)

	idea, err := svc.GetIdea(ctx, all[0].IdeaID)
	require.NoError(t, err)
	assert.Equal(t, all[0].IdeaID, idea.IdeaID)

	_, err = svc.GetIdea(ctx, "no-such-idea")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
