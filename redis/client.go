package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const historyTTL = 30 * 24 * time.Hour

// Client keeps a per-user log of everything said in the conversation,
// in both directions. The log is an audit trail served by the history
// API; it is not the session store, conversation state stays in
// memory.
type Client struct {
	rdb *redis.Client
	ctx context.Context
}

// ChatMessage is one logged exchange line.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationSummary describes one user's log for the history index.
type ConversationSummary struct {
	UserID       string    `json:"user_id"`
	LastMessage  string    `json:"last_message"`
	LastActivity time.Time `json:"last_activity"`
	MessageCount int       `json:"message_count"`
}

func NewClient(addr, password string, db int) Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	client := Client{
		rdb: rdb,
		ctx: context.Background(),
	}

	if err := client.Ping(); err != nil {
		log.Fatal().Err(err).
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connection failed")
	} else {
		log.Info().
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connected successfully")
	}

	return client
}

func (c *Client) Ping() error {
	return c.rdb.Ping(c.ctx).Err()
}

func (c *Client) AddUserMessage(userID, message string) error {
	return c.addMessage(userID, ChatMessage{
		Role:      "user",
		Content:   message,
		Timestamp: time.Now(),
	})
}

func (c *Client) AddBotMessage(userID, message string) error {
	return c.addMessage(userID, ChatMessage{
		Role:      "bot",
		Content:   message,
		Timestamp: time.Now(),
	})
}

func (c *Client) addMessage(userID string, message ChatMessage) error {
	key := historyKey(userID)

	messageJSON, err := json.Marshal(message)
	if err != nil {
		return err
	}

	if _, err = c.rdb.RPush(c.ctx, key, messageJSON).Result(); err != nil {
		return err
	}

	c.rdb.Expire(c.ctx, key, historyTTL)

	return nil
}

// GetHistory returns a user's full log, oldest first.
func (c *Client) GetHistory(userID string) ([]ChatMessage, error) {
	messages, err := c.rdb.LRange(c.ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var history []ChatMessage
	for _, message := range messages {
		var msg ChatMessage
		if err := json.Unmarshal([]byte(message), &msg); err != nil {
			continue
		}
		history = append(history, msg)
	}

	return history, nil
}

// GetConversationSummaries lists every logged user with their last
// exchange, for the history index endpoint.
func (c *Client) GetConversationSummaries() ([]ConversationSummary, error) {
	keys, err := c.rdb.Keys(c.ctx, "conversa:*").Result()
	if err != nil {
		return nil, err
	}

	var summaries []ConversationSummary
	for _, key := range keys {
		userID := key[len("conversa:"):]

		count, err := c.rdb.LLen(c.ctx, key).Result()
		if err != nil {
			continue
		}

		last, err := c.rdb.LRange(c.ctx, key, -1, -1).Result()
		if err != nil || len(last) == 0 {
			continue
		}

		var msg ChatMessage
		if err := json.Unmarshal([]byte(last[0]), &msg); err != nil {
			continue
		}

		summaries = append(summaries, ConversationSummary{
			UserID:       userID,
			LastMessage:  msg.Content,
			LastActivity: msg.Timestamp,
			MessageCount: int(count),
		})
	}

	return summaries, nil
}

func historyKey(userID string) string {
	return fmt.Sprintf("conversa:%s", userID)
}
