package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"volunteerhub/auth/gen/model"
	"volunteerhub/auth/gen/table"
	"volunteerhub/auth/storage"
	"volunteerhub/auth/users"
	"volunteerhub/internal/config"
	sqlite3 "volunteerhub/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.SessionStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "session-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.Auth.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpAuthDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("session storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func (s *Storage) Create(ctx context.Context, session users.Session) error {
	_, err := table.Sessions.
		INSERT(table.Sessions.AllColumns).
		MODEL(convertSessionFromDomain(session)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) Get(ctx context.Context, id uuid.UUID) (users.Session, error) {
	var dest model.Sessions
	err := table.Sessions.
		SELECT(table.Sessions.AllColumns).
		FROM(table.Sessions).
		WHERE(table.Sessions.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.Session{}, sql.ErrNoRows
		}
		return users.Session{}, err
	}
	return convertSessionToDomain(dest)
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := table.Sessions.
		DELETE().
		WHERE(table.Sessions.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) PushFlash(ctx context.Context, sessionID uuid.UUID, message string) error {
	flash := model.FlashMessages{
		SessionID: sessionID.String(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	_, err := table.FlashMessages.
		INSERT(table.FlashMessages.MutableColumns).
		MODEL(flash).
		ExecContext(ctx, s.db)
	return err
}

// PopFlashes drains the session's flash messages, ordered oldest first.
func (s *Storage) PopFlashes(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var dest []model.FlashMessages
	err = table.FlashMessages.
		SELECT(table.FlashMessages.AllColumns).
		FROM(table.FlashMessages).
		WHERE(table.FlashMessages.SessionID.EQ(sqlite.UUID(sessionID))).
		ORDER_BY(table.FlashMessages.ID.ASC()).
		QueryContext(ctx, tx, &dest)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	if len(dest) == 0 {
		return nil, nil
	}
	_, err = table.FlashMessages.
		DELETE().
		WHERE(table.FlashMessages.SessionID.EQ(sqlite.UUID(sessionID))).
		ExecContext(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	messages := make([]string, 0, len(dest))
	for _, flash := range dest {
		messages = append(messages, flash.Message)
	}
	return messages, nil
}

// PutHandoff stores the token, replacing any pending one of the same kind.
func (s *Storage) PutHandoff(ctx context.Context, sessionID uuid.UUID, kind, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = table.HandoffTokens.
		DELETE().
		WHERE(table.HandoffTokens.SessionID.EQ(sqlite.UUID(sessionID)).
			AND(table.HandoffTokens.Kind.EQ(sqlite.String(kind)))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	token := model.HandoffTokens{
		SessionID: sessionID.String(),
		Kind:      kind,
		Value:     value,
		CreatedAt: time.Now(),
	}
	_, err = table.HandoffTokens.
		INSERT(table.HandoffTokens.AllColumns).
		MODEL(token).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// ConsumeHandoff reads and deletes the token in one transaction. The false
// return means no token was pending.
func (s *Storage) ConsumeHandoff(ctx context.Context, sessionID uuid.UUID, kind string) (string, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, err
	}
	defer tx.Rollback()

	var dest model.HandoffTokens
	err = table.HandoffTokens.
		SELECT(table.HandoffTokens.AllColumns).
		FROM(table.HandoffTokens).
		WHERE(table.HandoffTokens.SessionID.EQ(sqlite.UUID(sessionID)).
			AND(table.HandoffTokens.Kind.EQ(sqlite.String(kind)))).
		QueryContext(ctx, tx, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	_, err = table.HandoffTokens.
		DELETE().
		WHERE(table.HandoffTokens.SessionID.EQ(sqlite.UUID(sessionID)).
			AND(table.HandoffTokens.Kind.EQ(sqlite.String(kind)))).
		ExecContext(ctx, tx)
	if err != nil {
		return "", false, err
	}
	if err := tx.Commit(); err != nil {
		return "", false, err
	}
	return dest.Value, true, nil
}
