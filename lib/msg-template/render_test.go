package msgtemplate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run(`single braces check`, func(t *testing.T) {
		result := Render("Выдан запрос {number}: {subject}", map[string]string{
			"number":  "C25001",
			"subject": "Несоответствие на линии",
		})
		require.Equal(t, "Выдан запрос C25001: Несоответствие на линии", result)
	})

	t.Run(`double braces check`, func(t *testing.T) {
		result := Render("Выдан запрос {{number}}", map[string]string{
			"number": "C25001",
		})
		require.Equal(t, "Выдан запрос C25001", result)
	})

	t.Run(`unknown placeholder stays check`, func(t *testing.T) {
		result := Render("Запрос {number} от {department}", map[string]string{
			"number": "C25001",
		})
		require.Equal(t, "Запрос C25001 от {department}", result)
	})

	t.Run(`empty template check`, func(t *testing.T) {
		require.Equal(t, "", Render("", map[string]string{"number": "C25001"}))
	})

	t.Run(`no values check`, func(t *testing.T) {
		require.Equal(t, "Запрос {number}", Render("Запрос {number}", nil))
	})

	t.Run(`deterministic order check`, func(t *testing.T) {
		// значение само содержит чужую подстановку: результат не должен
		// зависеть от порядка обхода map
		values := map[string]string{
			"a": "{b}",
			"b": "X",
		}
		for idx := 0; idx < 20; idx++ {
			require.Equal(t, "X", Render("{a}", values))
		}
	})
}
