package dashboard

import (
	"context"
	"errors"
	"sync"

	"life-dashboard/internal/domain/timewindow"
)

// ErrSuperseded 表示同一呼叫者已發出較新的載入，這次結果被捨棄。
var ErrSuperseded = errors.New("dashboard load superseded by a newer request")

// Builder 產生一次儀表板。
type Builder interface {
	Build(ctx context.Context, sel timewindow.Selector) (Dashboard, error)
}

// Loader 以世代計數保護同一呼叫者的連續載入：
// 新的 Load 會取消進行中的舊載入，舊結果永遠不會覆蓋新的選擇。
type Loader struct {
	builder Builder
	metrics Metrics

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	latest     *Dashboard
}

// NewLoader 建立 Loader；metrics 可為 nil。
func NewLoader(builder Builder, metrics Metrics) *Loader {
	return &Loader{builder: builder, metrics: metrics}
}

// Load 建立儀表板；若期間有更新的 Load，回傳 ErrSuperseded。
func (l *Loader) Load(ctx context.Context, sel timewindow.Selector) (Dashboard, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	l.cancel = cancel
	l.mu.Unlock()

	out, err := l.builder.Build(ctx, sel)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		if l.metrics != nil {
			l.metrics.IncSuperseded()
		}
		return Dashboard{}, ErrSuperseded
	}
	l.cancel = nil
	if err != nil {
		return Dashboard{}, err
	}
	published := out
	l.latest = &published
	return out, nil
}

// Latest 回傳最後一次成功且未被取代的結果。
func (l *Loader) Latest() (Dashboard, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.latest == nil {
		return Dashboard{}, false
	}
	return *l.latest, true
}

// maxLoaders 是保留的 Loader 上限；超過時先移除沒有進行中載入的項目。
const maxLoaders = 1024

// Loaders 依呼叫者（使用者 ID）各保留一個 Loader。
type Loaders struct {
	builder Builder
	metrics Metrics
	limit   int

	mu      sync.Mutex
	loaders map[string]*Loader
}

// NewLoaders 建立 Loader 集合。
func NewLoaders(builder Builder, metrics Metrics) *Loaders {
	return &Loaders{
		builder: builder,
		metrics: metrics,
		limit:   maxLoaders,
		loaders: make(map[string]*Loader),
	}
}

// For 取得 key 對應的 Loader，不存在時建立。
func (ls *Loaders) For(key string) *Loader {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	l, ok := ls.loaders[key]
	if !ok {
		ls.evictIdle()
		l = NewLoader(ls.builder, ls.metrics)
		ls.loaders[key] = l
	}
	return l
}

// evictIdle 在達到上限時移除閒置的 Loader；進行中的載入保留，以免世代保護失效。
func (ls *Loaders) evictIdle() {
	for key, l := range ls.loaders {
		if len(ls.loaders) < ls.limit {
			return
		}
		if l.idle() {
			delete(ls.loaders, key)
		}
	}
}

func (l *Loader) idle() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel == nil
}
