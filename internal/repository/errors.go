package repository

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

// uniqueViolation はPostgreSQLの一意制約違反を示すSQLSTATEコード。
const uniqueViolation = "23505"

// connectionException はPostgreSQLの接続例外クラス（SQLSTATE 08xxx）のプレフィックス。
const connectionExceptionClass = "08"

// isDuplicateKey はエラーが一意制約違反かどうかを判定する。
func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// isUnavailable はエラーがストレージへの接続障害かどうかを判定する。
// ドライバの接続断、ネットワークエラー、PostgreSQLの接続例外クラスを対象とする。
func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == connectionExceptionClass
	}

	return false
}

// classify は下位エラーをセンチネルエラーに包んで返す。
// 一意制約違反・接続障害のいずれでもない場合はそのまま返す。
func classify(err error) error {
	switch {
	case isDuplicateKey(err):
		return errors.Join(ErrDuplicateKey, err)
	case isUnavailable(err):
		return errors.Join(ErrUnavailable, err)
	default:
		return err
	}
}
