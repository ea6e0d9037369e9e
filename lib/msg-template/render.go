package msgtemplate

import (
	"sort"
	"strings"
)

// Render подставляет значения в шаблон.
// Поддерживаются оба написания подстановки: {name} и {{name}}.
// Подстановки без значения остаются в тексте как есть, полноту набора
// значений обеспечивает вызывающая сторона. Имена применяются в
// алфавитном порядке, результат не зависит от порядка обхода map.
func Render(tpl string, values map[string]string) string {
	if tpl == "" || len(values) == 0 {
		return tpl
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	result := tpl
	for _, name := range names {
		result = strings.ReplaceAll(result, "{{"+name+"}}", values[name])
		result = strings.ReplaceAll(result, "{"+name+"}", values[name])
	}
	return result
}
