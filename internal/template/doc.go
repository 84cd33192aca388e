// Package template рендерит плейсхолдеры в значениях конфигурации.
//
// Поддерживается единственная форма подстановки — {{ key }} по явному
// контексту. Используется в двух местах:
//   - рендеринг поля items против reference-ключей ({{ genomes }})
//   - рендеринг параметров job'а против текущего item ({{ item }})
//
// Универсальный шаблонизатор здесь намеренно не используется:
// нужны только две узкие формы подстановки с фиксированным набором
// ключей на каждый call site.
package template
