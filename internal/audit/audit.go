// Package audit records operator actions to Postgres. Recording is
// best-effort: a failed insert is logged and the action proceeds, so an
// audit outage never blocks approvals.
package audit

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// Action names recorded in the trail.
const (
	ActionLogin             = "login"
	ActionLogout            = "logout"
	ActionApproveKYC        = "approve_kyc"
	ActionRejectKYC         = "reject_kyc"
	ActionApproveLoan       = "approve_loan"
	ActionRejectLoan        = "reject_loan"
	ActionApproveWithdrawal = "approve_withdrawal"
	ActionRejectWithdrawal  = "reject_withdrawal"
	ActionBlockUser         = "block_user"
	ActionUnblockUser       = "unblock_user"
	ActionSetCreditLimit    = "set_credit_limit"
)

type Event struct {
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Reason     string
	CreatedAt  time.Time
}

type Logger struct {
	db *sql.DB
}

// NewLogger accepts a nil db; recording then degrades to log output only.
func NewLogger(db *sql.DB) *Logger {
	return &Logger{db: db}
}

// Record writes one audit event.
func (l *Logger) Record(ctx context.Context, actor, action, entityType, entityID, reason string) {
	log.Printf("[AUDIT] actor=%s action=%s entity=%s/%s reason=%q", actor, action, entityType, entityID, reason)

	if l.db == nil {
		return
	}

	_, err := l.db.ExecContext(ctx,
		"INSERT INTO admin_audit_log (actor, action, entity_type, entity_id, reason, created_at) VALUES ($1, $2, $3, $4, $5, NOW())",
		actor, action, entityType, entityID, reason)
	if err != nil {
		log.Printf("[AUDIT] failed to persist event: %v", err)
	}
}

// Recent returns the newest events, newest first.
func (l *Logger) Recent(ctx context.Context, limit int) ([]Event, error) {
	if l.db == nil {
		return nil, nil
	}

	rows, err := l.db.QueryContext(ctx,
		"SELECT actor, action, entity_type, entity_id, reason, created_at FROM admin_audit_log ORDER BY created_at DESC LIMIT $1",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Actor, &e.Action, &e.EntityType, &e.EntityID, &e.Reason, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
