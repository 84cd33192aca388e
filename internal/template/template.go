package template

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// ItemKey — ключ контекста, под которым доступен текущий item
// при рендеринге параметров.
const ItemKey = "item"

// genomesKey — ключ контекста для сериализованных reference-ключей
// при рендеринге поля items.
const genomesKey = "genomes"

// Resolve подставляет именованные плейсхолдеры {{ key }} значениями
// из контекста. Пробелы внутри скобок допускаются: {{item}} и
// {{ item }} эквивалентны.
//
// Чистая функция. Плейсхолдер с ключом, которого нет в контексте,
// и незакрытый {{ — ошибки; оркестратор трактует их как фатальные
// для текущего запуска.
func Resolve(tmpl string, ctx map[string]string) (string, error) {
	// Быстрый путь: строка без плейсхолдеров возвращается как есть.
	if !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	var b strings.Builder
	rest := tmpl
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])

		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrBadSyntax, tmpl)
		}
		end += start

		key := strings.TrimSpace(rest[start+2 : end])
		if key == "" {
			return "", fmt.Errorf("%w: empty placeholder in %q", ErrBadSyntax, tmpl)
		}

		value, ok := ctx[key]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnresolvedKey, key)
		}
		b.WriteString(value)

		rest = rest[end+2:]
	}
}

// ResolveItems разворачивает поле items шага в конкретный список строк.
//
// Если reference-ключи не заданы, raw используется как есть (no-op путь):
// конфигурации без per-genome expansion продолжают работать.
// Иначе raw сериализуется в JSON, рендерится против контекста
// {genomes: <сериализованные reference-ключи>} и разбирается обратно.
//
// Отсутствующее или пустое поле items означает "выполнить один раз":
// результат [""].
func ResolveItems(raw any, genomes domain.ReferenceKeys) ([]string, error) {
	if raw == nil {
		return []string{""}, nil
	}

	if genomes.Empty() {
		return itemStrings(raw)
	}

	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrItemsParse, err)
	}
	genomesJSON, err := json.Marshal(genomes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrItemsParse, err)
	}

	rendered, err := Resolve(string(rawJSON), map[string]string{genomesKey: string(genomesJSON)})
	if err != nil {
		return nil, err
	}

	// Если items был строкой-шаблоном, подстановка произошла внутри
	// JSON-кавычек — снимаем их, чтобы получить вложенный список.
	rendered = strings.Trim(rendered, `"`)

	var parsed any
	if err := json.Unmarshal([]byte(rendered), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrItemsParse, err)
	}

	return itemStrings(parsed)
}

// ResolveParams рендерит параметры шага против текущего item.
// Каждая пара (step, item) получает независимый контекст, поэтому один
// и тот же шаблон параметра даёт разное значение для каждого item.
func ResolveParams(params []map[string]string, item string) (domain.ResolvedInputs, error) {
	ctx := map[string]string{ItemKey: item}

	inputs := make(domain.ResolvedInputs, len(params))
	for _, param := range params {
		for name, raw := range param {
			value, err := Resolve(raw, ctx)
			if err != nil {
				return nil, fmt.Errorf("param %q: %w", name, err)
			}
			inputs[name] = value
		}
	}
	return inputs, nil
}

// itemStrings приводит разобранное значение items к списку строк.
// Элементы-объекты (например, записи genomes) сериализуются обратно
// в компактный JSON.
func itemStrings(v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil

	case []string:
		if len(t) == 0 {
			return []string{""}, nil
		}
		return t, nil

	case []any:
		if len(t) == 0 {
			return []string{""}, nil
		}
		items := make([]string, 0, len(t))
		for _, elem := range t {
			s, err := itemString(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
		return items, nil

	default:
		return nil, fmt.Errorf("%w: unexpected items type %T", ErrItemsParse, v)
	}
}

// itemString приводит один элемент списка items к строке.
func itemString(elem any) (string, error) {
	if s, ok := elem.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(elem)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrItemsParse, err)
	}
	return string(data), nil
}
