package service

import (
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/pkg/metrics"
	"Agrilink/internal/pkg/session"
	"Agrilink/internal/pkg/util"
	"Agrilink/internal/store"
	"context"
	log "log/slog"
	"time"
)

// Runtime 服务共享的状态容器与会话
type Runtime struct {
	Store   *store.Store
	Session *session.Manager
}

func NewRuntime(st *store.Store, sess *session.Manager) *Runtime {
	return &Runtime{Store: st, Session: sess}
}

// currentUserID 当前登录用户 id
func (r *Runtime) currentUserID() (int64, error) {
	if u := r.Store.State().Auth.User; u != nil && u.ID != 0 {
		return u.ID, nil
	}
	return 0, ErrNotAuthenticated
}

// thunk tracks one operation from pending to its outcome.
type thunk struct {
	store *store.Store
	meta  store.Meta
	ctx   context.Context
	start time.Time
}

// begin dispatches pending and returns a context carrying the trace id and
// the session credential.
func (r *Runtime) begin(ctx context.Context, op store.Op, key string) (context.Context, *thunk) {
	ctx = logger.WithTraceID(r.Session.Context(ctx), consts.TracePrefixOp)
	t := &thunk{store: r.Store, ctx: ctx, start: time.Now()}
	t.meta = r.Store.Begin(op, key)
	log.DebugContext(ctx, "operation pending", "op", op, "seq", t.meta.Seq, "key", key)
	return ctx, t
}

func (t *thunk) op() string {
	return string(t.meta.Op)
}

// fulfill dispatches the outcome; false means a newer outcome already won.
func (t *thunk) fulfill(a store.Action) bool {
	if !t.store.Dispatch(a) {
		t.observe(metrics.OutcomeStale)
		log.InfoContext(t.ctx, "丢弃过期响应", "op", t.meta.Op, "seq", t.meta.Seq, "key", t.meta.Key)
		return false
	}
	t.observe(metrics.OutcomeFulfilled)
	return true
}

func (t *thunk) reject(err error) error {
	t.store.Dispatch(store.Rejected{Meta: t.meta, Err: errorMessage(err)})
	t.observe(metrics.OutcomeRejected)
	log.WarnContext(t.ctx, "operation rejected", "op", t.meta.Op, "code", Code(err), "err", err)
	return err
}

// cancelled settles a screen-scoped operation whose caller has gone away. The
// in-flight flag is cleared, no result and no error are recorded.
func (t *thunk) cancelled() (bool, error) {
	err := t.ctx.Err()
	if err == nil {
		return false, nil
	}
	t.store.Dispatch(store.Rejected{Meta: t.meta})
	t.observe(metrics.OutcomeCancelled)
	log.DebugContext(t.ctx, "operation cancelled", "op", t.meta.Op)
	return true, err
}

// degrade applies a as the local fallback and reports the cause.
func (t *thunk) degrade(a store.Action, cause error) error {
	t.store.Dispatch(a)
	t.observe(metrics.OutcomeDegraded)
	log.WarnContext(t.ctx, "operation degraded", "op", t.meta.Op, "err", cause)
	return &DegradedSuccess{Op: t.op(), Cause: cause}
}

func (t *thunk) observe(outcome string) {
	metrics.ObserveOperation(t.op(), outcome, time.Since(t.start))
}

// validate 校验 DTO 并转换为 ValidationError
func validate(in any) error {
	err := util.ValidateDTO(in)
	if err == nil {
		return nil
	}
	if field, rule, ok := util.FirstViolation(err); ok {
		return &ValidationError{Field: field, Rule: rule}
	}
	return ErrParamInvalid
}
