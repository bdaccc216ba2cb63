package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFullName 姓名拼接规则
func TestFullName(t *testing.T) {
	t.Run("三段齐全时以空格连接", func(t *testing.T) {
		a := NewAuthor("Петров", "Петр", "Петрович", nil)
		assert.Equal(t, "Петров Петр Петрович", a.FullName())
	})

	t.Run("父称为空时无尾随空格", func(t *testing.T) {
		a := NewAuthor("Петров", "Петр", "", nil)
		assert.Equal(t, "Петров Петр", a.FullName())
	})
}
