package template

import "errors"

// Ошибки рендеринга шаблонов.
var (
	// ErrBadSyntax — незакрытый плейсхолдер или пустой ключ.
	ErrBadSyntax = errors.New("malformed template syntax")

	// ErrUnresolvedKey — плейсхолдер ссылается на ключ, которого нет в контексте.
	ErrUnresolvedKey = errors.New("unresolved template key")

	// ErrItemsParse — отрендеренное поле items не удалось разобрать в список.
	ErrItemsParse = errors.New("cannot parse rendered items")
)
