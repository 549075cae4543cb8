package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
)

func TestListTransactionsQuery(t *testing.T) {
	t.Run("orders by creation time descending with ID tiebreak", func(t *testing.T) {
		query, _ := listTransactionsQuery(portsrepo.ListTransactionsFilter{})
		assert.Contains(t, query, "ORDER BY created_at DESC, transaction_id DESC")
		assert.NotContains(t, query, "ORDER BY transaction_date")
	})

	t.Run("defaults the page size", func(t *testing.T) {
		query, args := listTransactionsQuery(portsrepo.ListTransactionsFilter{})
		assert.True(t, strings.Contains(query, "LIMIT $1 OFFSET $2"))
		assert.Equal(t, []any{100, 0}, args)
	})

	t.Run("user filter matches sender, receiver and creator", func(t *testing.T) {
		query, args := listTransactionsQuery(portsrepo.ListTransactionsFilter{UserID: "u-1", Limit: 25, Offset: 50})
		assert.Contains(t, query, "WHERE sender_id = $1 OR receiver_id = $1 OR created_by = $1")
		assert.True(t, strings.Contains(query, "LIMIT $2 OFFSET $3"))
		assert.Equal(t, []any{"u-1", 25, 50}, args)
	})
}
