package services

import (
	"net/http"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sendAt(t *testing.T, db *gorm.DB, svc *MessageService, sender, recipient uint, text string, at time.Time) *models.Message {
	t.Helper()
	message, err := svc.Send(MessageInput{Sender: sender, Recipient: recipient, Text: text})
	require.NoError(t, err)
	require.NoError(t, db.Model(message).Update("created_at", at).Error)
	message.CreatedAt = at
	return message
}

func TestMessageSendRequiresBothParties(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	messages := NewMessageService(db)
	a := mustSignup(t, members, "janedoe")

	_, err := messages.Send(MessageInput{Sender: a.ID, Recipient: 9999, Text: "hi"})
	var httpErr *models.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestMessageEditPartial(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	messages := NewMessageService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")

	message, err := messages.Send(MessageInput{Sender: a.ID, Recipient: b.ID, Text: "hello"})
	require.NoError(t, err)

	read := true
	updated, err := messages.Edit(message.ID, MessageUpdateInput{Read: &read})
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, "hello", updated.Text, "text untouched when absent from the request")

	text := "hello there"
	updated, err = messages.Edit(message.ID, MessageUpdateInput{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "hello there", updated.Text)
	assert.True(t, updated.Read, "read flag untouched when absent from the request")
}

func TestMessageEditMissing(t *testing.T) {
	db := openTestDB(t)
	messages := NewMessageService(db)

	text := "x"
	_, err := messages.Edit(9999, MessageUpdateInput{Text: &text})
	var httpErr *models.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestMessageDelete(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	messages := NewMessageService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")

	message, err := messages.Send(MessageInput{Sender: a.ID, Recipient: b.ID, Text: "hello"})
	require.NoError(t, err)

	require.NoError(t, messages.Delete(message.ID))

	err = messages.Delete(message.ID)
	var httpErr *models.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestInboxGroupsNewestMessagePerSender(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	messages := NewMessageService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")
	c := mustSignup(t, members, "jimmydoe")

	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	sendAt(t, db, messages, b.ID, a.ID, "b first", base)
	sendAt(t, db, messages, b.ID, a.ID, "b latest", base.Add(2*time.Hour))
	sendAt(t, db, messages, c.ID, a.ID, "c only", base.Add(time.Hour))
	// unrelated direction, must not show up in a's inbox
	sendAt(t, db, messages, a.ID, b.ID, "from a", base.Add(3*time.Hour))

	threads, err := messages.Inbox(a.ID)
	require.NoError(t, err)
	require.Len(t, threads, 2, "one thread per distinct sender")

	assert.Equal(t, "b latest", threads[0].Text)
	assert.Equal(t, b.ID, threads[0].SenderID)
	assert.Equal(t, "c only", threads[1].Text)
	assert.Equal(t, c.ID, threads[1].SenderID)
}

func TestOutboxGroupsNewestMessagePerRecipient(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	messages := NewMessageService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")
	c := mustSignup(t, members, "jimmydoe")

	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	sendAt(t, db, messages, a.ID, b.ID, "to b old", base)
	sendAt(t, db, messages, a.ID, b.ID, "to b new", base.Add(time.Hour))
	sendAt(t, db, messages, a.ID, c.ID, "to c", base.Add(30*time.Minute))

	threads, err := messages.Outbox(a.ID)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, "to b new", threads[0].Text)
	assert.Equal(t, "to c", threads[1].Text)
}

func TestThreadMessagesIsDirected(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	messages := NewMessageService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")

	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	sendAt(t, db, messages, a.ID, b.ID, "first", base)
	sendAt(t, db, messages, a.ID, b.ID, "second", base.Add(time.Minute))
	sendAt(t, db, messages, b.ID, a.ID, "reply", base.Add(2*time.Minute))

	thread, err := messages.ThreadMessages(a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "first", thread[0].Text)
	assert.Equal(t, "second", thread[1].Text)
}
