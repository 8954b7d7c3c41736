package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"

	"volunteerhub/bot/botstorage"
	dbmodel "volunteerhub/bot/gen/model"
	"volunteerhub/bot/gen/table"
	"volunteerhub/bot/model"
	"volunteerhub/internal/config"
	sqlite3 "volunteerhub/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	var dbuser dbmodel.Users
	err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.Users.AllColumns).
		Query(s.db, &dbuser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbuser), nil
}

func (s *Storage) GetUser(id int64) (model.User, error) {
	var dbuser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		WHERE(table.Users.ID.EQ(sqlite.Int(id))).
		Query(s.db, &dbuser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.User{}, sql.ErrNoRows
		}
		return model.User{}, err
	}
	return convertUserToDomain(dbuser), nil
}

func (s *Storage) Log(user model.User, msg string) error {
	message := dbmodel.MessageLog{
		UserID:    user.ID,
		Message:   msg,
		CreatedAt: time.Now(),
	}
	_, err := table.MessageLog.
		INSERT(table.MessageLog.UserID, table.MessageLog.Message, table.MessageLog.CreatedAt).
		MODEL(message).
		Exec(s.db)
	if err != nil {
		return err
	}
	return nil
}

func (s *Storage) LinkVolunteer(user model.User, volunteerID string) error {
	_, err := table.Users.
		UPDATE(table.Users.VolunteerID, table.Users.UpdatedAt).
		SET(volunteerID, time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(user.ID))).
		Exec(s.db)
	if err != nil {
		return err
	}
	return nil
}

func (s *Storage) Subscribe(user model.User) error {
	return s.setSubscribed(user, true)
}

func (s *Storage) Unsubscribe(user model.User) error {
	return s.setSubscribed(user, false)
}

func (s *Storage) setSubscribed(user model.User, subscribed bool) error {
	_, err := table.Users.
		UPDATE(table.Users.Subscribed, table.Users.UpdatedAt).
		SET(subscribed, time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(user.ID))).
		Exec(s.db)
	if err != nil {
		return err
	}
	return nil
}

func (s *Storage) ListSubscribed() ([]model.User, error) {
	var dbusers []dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		WHERE(table.Users.Subscribed.IS_TRUE()).
		Query(s.db, &dbusers)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(dbusers))
	for i := range dbusers {
		users = append(users, convertUserToDomain(dbusers[i]))
	}
	return users, nil
}

func (s *Storage) MarkNotified(user model.User, at time.Time) error {
	_, err := table.Users.
		UPDATE(table.Users.LastNotifiedAt, table.Users.UpdatedAt).
		SET(at, time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(user.ID))).
		Exec(s.db)
	if err != nil {
		return err
	}
	return nil
}
