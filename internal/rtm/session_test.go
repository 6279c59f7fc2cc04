package rtm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slacktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flw-cn/go-gifbot"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func channel(id, name string, set func(*slack.Channel)) slack.Channel {
	var c slack.Channel
	c.ID = id
	c.Name = name
	if set != nil {
		set(&c)
	}
	return c
}

func TestConvertMessage(t *testing.T) {
	ev := &slack.MessageEvent{}
	ev.Type = "message"
	ev.Channel = "C1"
	ev.User = "U1"
	ev.Text = "<@UBOT> erlich"
	ev.Timestamp = "1355517523.000005"

	assert.Equal(t, &gifbot.MessageEvent{
		Type:      "message",
		Channel:   "C1",
		User:      "U1",
		Text:      "<@UBOT> erlich",
		Timestamp: "1355517523.000005",
	}, convertMessage(ev))
}

func TestSplitConversations(t *testing.T) {
	chans, groups, dms := splitConversations([]slack.Channel{
		channel("C1", "general", func(c *slack.Channel) { c.IsChannel = true; c.IsMember = true }),
		channel("C2", "old", func(c *slack.Channel) { c.IsChannel = true; c.IsArchived = true }),
		channel("G1", "founders", func(c *slack.Channel) { c.IsGroup = true; c.IsPrivate = true }),
		channel("G2", "", func(c *slack.Channel) { c.IsMpIM = true }),
		channel("D1", "", func(c *slack.Channel) { c.IsIM = true; c.User = "URICHARD" }),
	})

	assert.Equal(t, []gifbot.Conversation{{ID: "C1", Name: "general", Kind: gifbot.KindChannel}}, chans)
	assert.Equal(t, []gifbot.Conversation{
		{ID: "G1", Name: "founders", Kind: gifbot.KindGroup},
		{ID: "G2", Kind: gifbot.KindGroup},
	}, groups)
	assert.Equal(t, []gifbot.Conversation{{ID: "D1", Name: "URICHARD", Kind: gifbot.KindDirectMessage}}, dms)
}

func TestResolveConversation(t *testing.T) {
	s := New("xoxb-test", WithLogger(quietLogger()))
	s.conversations["C1"] = gifbot.Conversation{ID: "C1", Name: "general", Kind: gifbot.KindChannel}

	assert.Equal(t, "general", s.ResolveConversation("C1").Name)
	assert.Equal(t, gifbot.Conversation{ID: "D9", Kind: gifbot.KindDirectMessage}, s.ResolveConversation("D9"))
}

func TestSendBeforeConnect(t *testing.T) {
	s := New("xoxb-test", WithLogger(quietLogger()))
	assert.NotPanics(t, func() {
		s.Send(gifbot.Conversation{ID: "C1"}, "urlA")
	})
}

func TestHandlersRegistered(t *testing.T) {
	s := New("", WithLogger(quietLogger()), WithClient(slack.New("xoxb-test")))
	s.OnOpen(func(*gifbot.OpenEvent) {})
	s.OnMessage(func(*gifbot.MessageEvent) {})

	assert.Len(t, s.openHandlers, 1)
	assert.Len(t, s.messageHandlers, 1)
}

func TestRunDeliversEventsAndSends(t *testing.T) {
	srv := slacktest.NewTestServer()
	srv.Start()
	defer srv.Stop()

	s := New("", WithLogger(quietLogger()), WithClient(slack.New("xoxb-test", slack.OptionAPIURL(srv.GetAPIURL()))))

	opened := make(chan *gifbot.OpenEvent, 4)
	messages := make(chan *gifbot.MessageEvent, 16)
	s.OnOpen(func(evt *gifbot.OpenEvent) {
		select {
		case opened <- evt:
		default:
		}
	})
	s.OnMessage(func(evt *gifbot.MessageEvent) {
		if evt.Text != "<@U023BECGF> erlich" {
			return
		}
		s.Send(s.ResolveConversation(evt.Channel), "urlA")
		select {
		case messages <- evt:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case evt := <-opened:
		assert.Equal(t, gifbot.User{ID: "U023BECGF", Name: "TestSlackBot"}, evt.Self)
		assert.Equal(t, "SlackTest Team", evt.Team.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no open event")
	}

	srv.SendMessageToChannel("C1", "<@U023BECGF> erlich")
	select {
	case evt := <-messages:
		assert.Equal(t, "message", evt.Type)
		assert.Equal(t, "C1", evt.Channel)
	case <-time.After(5 * time.Second):
		t.Fatal("no message event")
	}
	assert.Eventually(t, func() bool { return srv.SawMessage("urlA") }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunInvalidAuth(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
	}))
	defer api.Close()

	s := New("", WithLogger(quietLogger()), WithClient(slack.New("xoxb-bad", slack.OptionAPIURL(api.URL+"/"))))
	opened := false
	s.OnOpen(func(*gifbot.OpenEvent) { opened = true })

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAuth)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return on invalid auth")
	}
	assert.False(t, opened)
}
