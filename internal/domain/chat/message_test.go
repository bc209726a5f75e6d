package chat

import (
	"fmt"
	"testing"
)

func TestTruncate(t *testing.T) {
	var msgs []Message
	for i := 0; i < MaxHistoryEntries+4; i++ {
		msgs = append(msgs, Message{Role: RoleUser, Content: fmt.Sprintf("msg %d", i)})
	}

	got := Truncate(msgs)
	if len(got) != MaxHistoryEntries {
		t.Fatalf("esperado %d entradas, veio %d", MaxHistoryEntries, len(got))
	}
	if got[0].Content != "msg 4" {
		t.Fatalf("deve descartar as mais antigas, primeira veio %q", got[0].Content)
	}
	if got[len(got)-1].Content != fmt.Sprintf("msg %d", MaxHistoryEntries+3) {
		t.Fatalf("última entrada errada: %q", got[len(got)-1].Content)
	}
}

func TestTruncateCurto(t *testing.T) {
	msgs := []Message{{Role: RoleUser, Content: "oi"}}
	if got := Truncate(msgs); len(got) != 1 {
		t.Fatalf("histórico curto não deve ser cortado, veio %d", len(got))
	}
	if got := Truncate(nil); got != nil {
		t.Fatalf("nil permanece nil, veio %v", got)
	}
}
