package catalog

import (
	"github.com/petsas/appointment-service/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов к базе данных
type DBExecutor = dbmetrics.DBExecutor
