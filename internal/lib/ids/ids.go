// Package ids генерирует идентификаторы записей.
//
// Идентификатор совместим с прежней схемой «текущее время в миллисекундах»:
// это непрозрачное int64-число того же порядка, но повторная генерация в
// пределах одной миллисекунды не приводит к коллизии — значение монотонно
// увеличивается относительно последнего выданного.
package ids

import (
	"sync/atomic"
	"time"
)

var last atomic.Int64

// Next возвращает новый уникальный идентификатор.
// Безопасен для конкурентного вызова.
func Next() int64 {
	for {
		now := time.Now().UnixMilli()
		prev := last.Load()
		id := now
		if id <= prev {
			id = prev + 1
		}
		if last.CompareAndSwap(prev, id) {
			return id
		}
	}
}
