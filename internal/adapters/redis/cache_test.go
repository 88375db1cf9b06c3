package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotelmerge/internal/adapters/redis"
	"hotelmerge/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	hotels := []domain.Hotel{{ID: "iJhz", DestinationID: 5432, Name: "Beach Villas Singapore"}}
	if err := c.Set(ctx, "hotels:1:h=iJhz:d=*", hotels, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []domain.Hotel
	ok, err := c.Get(ctx, "hotels:1:h=iJhz:d=*", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].ID != "iJhz" || got[0].DestinationID != 5432 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	var dst []domain.Hotel
	if ok, err := c.Get(ctx, "absent", &dst); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []domain.Hotel{{ID: "1"}}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "k", &dst); ok {
		t.Fatalf("expected miss after del")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []domain.Hotel{{ID: "1"}}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var dst []domain.Hotel
	if ok, _ := c.Get(ctx, "k", &dst); ok {
		t.Fatalf("expected entry to expire")
	}
}
