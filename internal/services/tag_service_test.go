package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
)

func TestTagService(t *testing.T) {
	ctx := context.Background()

	t.Run("cria tag ativa com nome único", func(t *testing.T) {
		svc := NewTagService(newMemTagRepo(), nopLogger{})

		tag, err := svc.CreateTag(ctx, "chargeback")
		require.NoError(t, err)
		assert.True(t, tag.Active)

		_, err = svc.CreateTag(ctx, "chargeback")
		assert.ErrorIs(t, err, errors.ErrTagAlreadyExists)
	})

	t.Run("nome em branco é erro de validação", func(t *testing.T) {
		svc := NewTagService(newMemTagRepo(), nopLogger{})

		_, err := svc.CreateTag(ctx, "   ")
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})

	t.Run("tag desativada some da listagem comum mas não do catálogo", func(t *testing.T) {
		repo := newMemTagRepo(
			&entities.Tag{ID: "tag-1", Name: "chargeback", Active: true},
			&entities.Tag{ID: "tag-2", Name: "refund", Active: true},
		)
		svc := NewTagService(repo, nopLogger{})

		active := false
		_, err := svc.UpdateTag(ctx, "tag-2", UpdateTagInput{Active: &active})
		require.NoError(t, err)

		actives, err := svc.ListActiveTags(ctx)
		require.NoError(t, err)
		assert.Len(t, actives, 1)

		all, err := svc.ListAllTags(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("tag inexistente responde not found", func(t *testing.T) {
		svc := NewTagService(newMemTagRepo(), nopLogger{})

		name := "renamed"
		_, err := svc.UpdateTag(ctx, "tag-ghost", UpdateTagInput{Name: &name})
		assert.ErrorIs(t, err, errors.ErrTagNotFound)
	})

	t.Run("delete remove definitivamente", func(t *testing.T) {
		repo := newMemTagRepo(&entities.Tag{ID: "tag-1", Name: "chargeback", Active: true})
		svc := NewTagService(repo, nopLogger{})

		require.NoError(t, svc.DeleteTag(ctx, "tag-1"))
		assert.Empty(t, repo.tags)
	})
}
