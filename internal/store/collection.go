package store

import (
	"context"
	"encoding/json"
)

// Doc 可放入集合的文档，DocID 在同一集合内唯一
type Doc interface {
	DocID() string
}

// Revisioned 带版本号的文档。每次改写自增，用于事后发现丢失更新（不能阻止）。
type Revisioned interface {
	BumpRev()
}

// Collection 把一串 JSON 文档存在同一个列表 key 下，并限制保留长度。
// 超出上限后最旧的文档被丢弃且不可恢复——这是约定的数据边界，不是 bug。
type Collection[T Doc] struct {
	kv  KV
	key string
	cap int64 // <=0 表示不设上限（频道表这种小列表用）
}

func NewCollection[T Doc](kv KV, key string, cap int64) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, cap: cap}
}

func (c *Collection[T]) Key() string { return c.key }

// Append 新文档插入头部，然后裁掉尾部多出来的部分（最新优先保留）
func (c *Collection[T]) Append(ctx context.Context, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := c.kv.LPush(ctx, c.key, string(raw)); err != nil {
		return err
	}
	if c.cap > 0 {
		return c.kv.LTrim(ctx, c.key, 0, c.cap-1)
	}
	return nil
}

// AppendTail 追加到尾部，保持创建顺序（不裁剪，仅用于无上限集合）
func (c *Collection[T]) AppendTail(ctx context.Context, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.kv.RPush(ctx, c.key, string(raw))
}

// Range 按存储顺序读一段文档。key 不存在视为空集合，不报错。
func (c *Collection[T]) Range(ctx context.Context, start, stop int64) ([]T, error) {
	raws, err := c.kv.LRange(ctx, c.key, start, stop)
	if err != nil {
		return nil, err
	}
	docs := make([]T, 0, len(raws))
	for _, raw := range raws {
		var doc T
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			// 脏数据跳过，不让单条坏记录拖垮整个集合
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// All 读整个集合（受上限约束，所以是 O(cap)）
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	stop := int64(-1)
	if c.cap > 0 {
		stop = c.cap - 1
	}
	return c.Range(ctx, 0, stop)
}

// Mutate 对指定 id 的文档做字段级修改：
// 整段读出 → 线性扫描定位 → 内存中改 → LSET 按原位置写回。
// 两个并发 Mutate 之间没有串行化保证，后写者可能覆盖先写者（集合粒度 last-writer-wins）。
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T)) (T, error) {
	var zero T
	docs, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for i := range docs {
		if docs[i].DocID() != id {
			continue
		}
		fn(&docs[i])
		if r, ok := any(&docs[i]).(Revisioned); ok {
			r.BumpRev()
		}
		raw, err := json.Marshal(docs[i])
		if err != nil {
			return zero, err
		}
		if err := c.kv.LSet(ctx, c.key, int64(i), string(raw)); err != nil {
			return zero, err
		}
		return docs[i], nil
	}
	return zero, ErrDocNotFound
}

// Rewrite 整表重写的回退路径：删 key 后按原顺序重新追加。
// keep 为 nil 表示全保留；apply 为 nil 表示不改内容。
// 删 key 与重新追加之间进程崩溃会把集合清空——这是已接受并写明的故障窗口。
// 返回重写后保留的文档数。
func (c *Collection[T]) Rewrite(ctx context.Context, keep func(T) bool, apply func(*T)) (int, error) {
	docs, err := c.All(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]string, 0, len(docs))
	for i := range docs {
		if keep != nil && !keep(docs[i]) {
			continue
		}
		if apply != nil {
			apply(&docs[i])
			if r, ok := any(&docs[i]).(Revisioned); ok {
				r.BumpRev()
			}
		}
		raw, err := json.Marshal(docs[i])
		if err != nil {
			return 0, err
		}
		kept = append(kept, string(raw))
	}
	if err := c.kv.Del(ctx, c.key); err != nil {
		return 0, err
	}
	if len(kept) > 0 {
		// LRange 是头到尾的顺序，RPush 按同序回放即可原样复原列表
		if err := c.kv.RPush(ctx, c.key, kept...); err != nil {
			return 0, err
		}
	}
	return len(kept), nil
}
