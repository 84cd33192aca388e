// Package cli реализует инструмент командной строки run-data-managers.
//
// # Обзор
//
// CLI наполняет reference-данные на инстансе Galaxy: читает YAML-файл
// со списком data managers, отправляет jobs через Galaxy API и ждёт
// их завершения. Проверка идемпотентности пропускает то, что уже
// наполнено.
//
// # Команды
//
//   - run:   один полный проход по конфигурации
//   - watch: периодические проходы по cron или интервалу
//
// Каждая команда создаётся через фабричную функцию (newRunCmd и т.д.),
// принимающую *Options — общие флаги, привязанные к PersistentFlags
// корневой команды.
//
// # Аутентификация
//
// Ключ API передаётся через --api-key. Если он не задан, но заданы
// --user и --password, ключ запрашивается у Galaxy через baseauth.
//
// # Вывод
//
// Сводка запуска выводится в stdout: таблица (по умолчанию) или JSON
// с флагом --json. Логи идут в stderr, поэтому вывод можно направлять
// в pipe: run-data-managers run --json ... | jq .
package cli
