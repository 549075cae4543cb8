package sequencing_test

import (
	"testing"

	"github.com/impresthq/imprest_backend/internal/utils/sequencing"
	"github.com/stretchr/testify/assert"
)

func TestValidPrefix(t *testing.T) {
	assert.True(t, sequencing.ValidPrefix("ORD-2024"))
	assert.True(t, sequencing.ValidPrefix("RBC-2025"))
	assert.False(t, sequencing.ValidPrefix("A"), "too short")
	assert.False(t, sequencing.ValidPrefix("ord-2024"), "lowercase not allowed")
	assert.False(t, sequencing.ValidPrefix("ORD 2024"), "spaces not allowed")
	assert.False(t, sequencing.ValidPrefix(""))
}

func TestNextOrderNumber(t *testing.T) {
	tests := []struct {
		name  string
		last  int64
		start int64
		want  int64
	}{
		{"fresh series", 0, 1, 1},
		{"continues counter", 7, 1, 8},
		{"start raised past counter", 3, 100, 100},
		{"counter already past start", 120, 100, 121},
		{"zero start treated as one", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sequencing.NextOrderNumber(tt.last, tt.start))
		})
	}
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-2024-001", sequencing.FormatOrderNumber("ORD-2024", 1, ""))
	assert.Equal(t, "ORD-2024-042-HQ", sequencing.FormatOrderNumber("ORD-2024", 42, "HQ"))
	assert.Equal(t, "ORD-1234", sequencing.FormatOrderNumber("ORD", 1234, ""), "wide numbers kept intact")
}

func TestNameToken(t *testing.T) {
	assert.Equal(t, "JANE", sequencing.NameToken("Jane Doe"))
	assert.Equal(t, "JANE", sequencing.NameToken("  jane   doe "))
	assert.Equal(t, "J-P", sequencing.NameToken("j-p smith"))
	assert.Equal(t, "", sequencing.NameToken("   "))
}

func TestRoleToken(t *testing.T) {
	assert.Equal(t, "ADMIN", sequencing.RoleToken("admin"))
	assert.Equal(t, "ADMIN", sequencing.RoleToken("superadmin"))
	assert.Equal(t, "ACC", sequencing.RoleToken("accountant"))
	assert.Equal(t, "ACC", sequencing.RoleToken("acc"))
	assert.Equal(t, "EMP", sequencing.RoleToken("employee"))
	assert.Equal(t, "EMP", sequencing.RoleToken("intern"), "unknown roles default to EMP")
}

func TestTransactionID(t *testing.T) {
	prefix := sequencing.TransactionIDPrefix("RBC-2025", "JANE", "EMP", "IMP")
	assert.Equal(t, "RBC-2025-JANE-EMP-IMP-", prefix)
	assert.Equal(t, "RBC-2025-JANE-EMP-IMP-001", sequencing.FormatTransactionID(prefix, 1))
	assert.Equal(t, "RBC-2025-JANE-EMP-IMP-017", sequencing.FormatTransactionID(prefix, 17))
}

func TestTypeToken(t *testing.T) {
	assert.Equal(t, "IMP", sequencing.TypeToken("IMPREST"))
	assert.Equal(t, "EXP", sequencing.TypeToken("EXPENSE"))
}
