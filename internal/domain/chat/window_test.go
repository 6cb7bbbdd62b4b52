package chat_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/chatbot-service/internal/domain/chat"
)

func TestWindow_KeepsLastKExchanges(t *testing.T) {
	t.Parallel()

	w := chat.NewWindow(2)
	for i := range 4 {
		w.AddExchange(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	want := []chat.Message{
		chat.UserMessage("q2"),
		chat.AssistantMessage("a2"),
		chat.UserMessage("q3"),
		chat.AssistantMessage("a3"),
	}
	assert.Equal(t, want, w.Messages())
}

func TestWindow_ZeroRetainsNothing(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, -3} {
		w := chat.NewWindow(k)
		w.AddExchange("hello", "hi")
		assert.Equal(t, 0, w.Len(), "k=%d", k)
	}
}

func TestWindow_MessagesReturnsCopy(t *testing.T) {
	t.Parallel()

	w := chat.NewWindow(5)
	w.AddExchange("hello", "hi")

	got := w.Messages()
	got[0].Content = "mutated"

	assert.Equal(t, "hello", w.Messages()[0].Content)
}

func TestWindow_Clear(t *testing.T) {
	t.Parallel()

	w := chat.NewWindow(5)
	w.AddExchange("hello", "hi")
	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Messages())
}

func TestWindow_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	w := chat.NewWindow(5)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.AddExchange(fmt.Sprintf("q%d", i), "a")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, w.Len())
}
