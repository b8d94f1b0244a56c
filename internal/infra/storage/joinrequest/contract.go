package joinrequest

import "github.com/aldnch/GolfTeeService/pkg/txmanager"

// Переиспользуем интерфейс txmanager для работы с БД:
// ему удовлетворяют и *sql.DB, и *sql.Tx.
type DBExecutor = txmanager.DBExecutor
