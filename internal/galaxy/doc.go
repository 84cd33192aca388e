// Package galaxy — HTTP-клиент для API удалённого Galaxy-инстанса.
//
// Клиент покрывает только операции, нужные для провижининга:
//   - отправка tool/data-manager jobs (POST /api/tools)
//   - опрос состояния dataset'ов (GET /api/datasets/{id})
//   - чтение tool data tables (GET /api/tool_data/{name})
//   - список преднастроенных dbkeys (GET /api/genomes)
//   - обмен email/password на API-ключ (GET /api/authenticate/baseauth)
//
// Внутренняя семантика выполнения jobs на инстансе — не забота
// этого пакета: клиент видит только интерфейсную границу API.
package galaxy
