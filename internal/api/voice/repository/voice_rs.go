package voiceRepository

import (
	"context"
	"database/sql"
	"time"

	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type VoiceCommandDB struct {
	ID         sql.NullString `db:"id"`
	ArtisanID  sql.NullString `db:"artisan_id"`
	SessionID  sql.NullString `db:"session_id"`
	Language   sql.NullString `db:"language"`
	AudioFile  sql.NullString `db:"audio_file"`
	Transcript sql.NullString `db:"transcript"`
	Intent     sql.NullString `db:"intent"`
	Action     sql.NullString `db:"action"`
	Success    sql.NullBool   `db:"success"`
	Response   sql.NullString `db:"response"`
	AudioURL   sql.NullString `db:"audio_url"`
	Confidence sql.NullInt64  `db:"confidence"`
	Metadata   sql.NullString `db:"metadata"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *voiceRepository) CreateVoiceCommand(ctx context.Context, cmd entity.VoiceCommand) error {
	requestID := contextPkg.GetRequestID(ctx)

	metadataJSON, err := jsoniter.Marshal(cmd.Metadata)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal metadata")
		return err
	}

	argsKV := map[string]interface{}{
		"id":         cmd.ID,
		"artisan_id": cmd.ArtisanID,
		"session_id": cmd.SessionID,
		"language":   cmd.Language,
		"audio_file": cmd.AudioFile,
		"transcript": cmd.Transcript,
		"intent":     cmd.Intent,
		"action":     cmd.Action,
		"success":    cmd.Success,
		"response":   cmd.Response,
		"audio_url":  cmd.AudioURL,
		"confidence": cmd.Confidence,
		"metadata":   string(metadataJSON),
		"created_at": cmd.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateVoiceCommand, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateVoiceCommand")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating voice command")
		return err
	}

	return nil
}

func (r *voiceRepository) GetVoiceCommandsByArtisan(ctx context.Context, artisanID string, limit, offset int) ([]entity.VoiceCommand, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var commandsList []VoiceCommandDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountVoiceCommandsByArtisan, map[string]interface{}{
		"artisan_id": artisanID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountVoiceCommandsByArtisan named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountVoiceCommandsByArtisan execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"artisan_id": artisanID,
		"limit":      limit,
		"offset":     offset,
	}

	query, args, err := sqlx.Named(queryGetVoiceCommandsByArtisan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetVoiceCommandsByArtisan named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &commandsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetVoiceCommandsByArtisan execution err")
		return nil, 0, err
	}

	commands := make([]entity.VoiceCommand, 0, len(commandsList))
	for _, cmdDB := range commandsList {
		commands = append(commands, r.makeVoiceCommand(cmdDB))
	}

	return commands, total, nil
}

func (r *voiceRepository) makeVoiceCommand(cmdDB VoiceCommandDB) entity.VoiceCommand {
	var metadata map[string]interface{}
	if cmdDB.Metadata.Valid && cmdDB.Metadata.String != "" {
		_ = jsoniter.UnmarshalFromString(cmdDB.Metadata.String, &metadata)
	}

	return entity.VoiceCommand{
		ID:         cmdDB.ID.String,
		ArtisanID:  cmdDB.ArtisanID.String,
		SessionID:  cmdDB.SessionID.String,
		Language:   cmdDB.Language.String,
		AudioFile:  cmdDB.AudioFile.String,
		Transcript: cmdDB.Transcript.String,
		Intent:     cmdDB.Intent.String,
		Action:     cmdDB.Action.String,
		Success:    cmdDB.Success.Bool,
		Response:   cmdDB.Response.String,
		AudioURL:   cmdDB.AudioURL.String,
		Confidence: int(cmdDB.Confidence.Int64),
		Metadata:   metadata,
		CreatedAt:  cmdDB.CreatedAt,
	}
}
