package lsp

import (
	"sync"
	"testing"
)

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///figure.hcl"

	store.Open(uri, "version 1")
	if content, ok := store.Get(uri); !ok || content != "version 1" {
		t.Fatalf("Get() = %q, %v after open", content, ok)
	}

	store.SetResult(uri, "version 1", &AnalysisResult{})
	if store.Result(uri) == nil {
		t.Fatal("expected result after SetResult")
	}

	store.Update(uri, "version 2")
	if content, _ := store.Get(uri); content != "version 2" {
		t.Errorf("Get() = %q after update", content)
	}
	if store.Result(uri) != nil {
		t.Error("update should drop the stale result")
	}

	store.SetResult(uri, "version 1", &AnalysisResult{})
	if store.Result(uri) != nil {
		t.Error("result for old content should be ignored")
	}

	store.Close(uri)
	if _, ok := store.Get(uri); ok {
		t.Error("document found after close")
	}
	store.SetResult(uri, "version 2", &AnalysisResult{})
	if store.Result(uri) != nil {
		t.Error("result stored for a closed document")
	}
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///figure.hcl"
	store.Open(uri, "initial")

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			content := string(rune('0' + n))
			store.Update(uri, content)
			store.SetResult(uri, content, &AnalysisResult{})
			store.Result(uri)
		}(i)
	}
	wg.Wait()

	if content, ok := store.Get(uri); !ok || content == "" {
		t.Errorf("Get() = %q, %v after concurrent updates", content, ok)
	}
}
