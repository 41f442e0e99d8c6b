package outcome

import "github.com/m04kA/SMC-CateringService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД.
// Репозиторию всё равно, обёрнуто ли соединение сбором метрик.
type DBExecutor = dbmetrics.DBExecutor
