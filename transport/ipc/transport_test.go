package ipc

import (
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestProbeCandidatesSelectsFirstReachable(t *testing.T) {
	var probed []int
	conn, err := probeCandidates(func(i int) (net.Conn, error) {
		probed = append(probed, i)
		if i != 7 {
			return nil, fmt.Errorf("candidate %d unavailable", i)
		}
		client, server := net.Pipe()
		server.Close()
		return client, nil
	})
	if err != nil {
		t.Fatalf("probeCandidates: %v", err)
	}
	conn.Close()

	want := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if len(probed) != len(want) {
		t.Fatalf("probed %v, want %v", probed, want)
	}
	for i := range want {
		if probed[i] != want[i] {
			t.Fatalf("probed %v, want %v", probed, want)
		}
	}
}

func TestProbeCandidatesAllFail(t *testing.T) {
	probes := 0
	_, err := probeCandidates(func(i int) (net.Conn, error) {
		probes++
		return nil, fmt.Errorf("no")
	})
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("got %v, want ErrNoCandidate", err)
	}
	if probes != candidateCount {
		t.Fatalf("probed %d candidates, want %d", probes, candidateCount)
	}
}
