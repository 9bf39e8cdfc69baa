package editor

import (
	"context"
	"fmt"

	"eventease/internal/layout"
)

// LayoutSource is the hall-side contract the editor needs: read a hall's
// layout when a session opens and write it back on save.
type LayoutSource interface {
	GetLayout(ctx context.Context, hallID string) (*layout.Layout, error)
	SaveLayout(ctx context.Context, hallID string, l *layout.Layout) error
}

type Service interface {
	Open(ctx context.Context, hallID string) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Close(ctx context.Context, sessionID string) error
	Save(ctx context.Context, sessionID string) (*Session, error)

	SetTool(ctx context.Context, sessionID string, mode ToolMode, cfg ToolConfig) (*Session, error)
	Rotate(ctx context.Context, sessionID string) (float64, error)
	Ghost(ctx context.Context, sessionID string, x, y float64) ([]layout.PlacedItem, error)
	Click(ctx context.Context, sessionID string, x, y float64) (ClickResult, *Session, error)
	SetSelection(ctx context.Context, sessionID string, ids []string) ([]string, error)

	ApplyZone(ctx context.Context, sessionID, zoneID string) (*Session, error)
	AddZone(ctx context.Context, sessionID string, req AddZoneRequest) (*layout.Zone, error)
	UpdateZone(ctx context.Context, sessionID, zoneID string, req UpdateZoneRequest) (*layout.Zone, error)
	DeleteZone(ctx context.Context, sessionID, zoneID string) (int, error)
}

type service struct {
	store  Store
	layout LayoutSource
}

func NewService(store Store, layoutSource LayoutSource) Service {
	return &service{store: store, layout: layoutSource}
}

func (s *service) Open(ctx context.Context, hallID string) (*Session, error) {
	l, err := s.layout.GetLayout(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hall layout: %w", err)
	}

	sess := NewSession(hallID, l)
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Session, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *service) Close(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *service) Save(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.layout.SaveLayout(ctx, sess.HallID, sess.Layout); err != nil {
		return nil, fmt.Errorf("failed to save hall layout: %w", err)
	}

	sess.Dirty = false
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// mutate loads the session, applies fn, and writes the session back when
// fn succeeds. Every editor mutation goes through here so the stored
// session can never drift from what the handler returned.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(*Session) error) (*Session, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) SetTool(ctx context.Context, sessionID string, mode ToolMode, cfg ToolConfig) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SetTool(mode, cfg)
	})
}

func (s *service) Rotate(ctx context.Context, sessionID string) (float64, error) {
	sess, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		sess.RotateStep()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sess.Rotation, nil
}

func (s *service) Ghost(ctx context.Context, sessionID string, x, y float64) ([]layout.PlacedItem, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Previewing assigns no ids and mutates nothing, so the session is not
	// written back.
	return sess.Ghost(x, y), nil
}

func (s *service) Click(ctx context.Context, sessionID string, x, y float64) (ClickResult, *Session, error) {
	var result ClickResult
	sess, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		result = sess.Click(x, y)
		return nil
	})
	if err != nil {
		return ClickResult{}, nil, err
	}
	return result, sess, nil
}

func (s *service) SetSelection(ctx context.Context, sessionID string, ids []string) ([]string, error) {
	sess, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		sess.SetSelection(ids)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess.Selected, nil
}

func (s *service) ApplyZone(ctx context.Context, sessionID, zoneID string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.ApplyZone(zoneID)
	})
}

func (s *service) AddZone(ctx context.Context, sessionID string, req AddZoneRequest) (*layout.Zone, error) {
	var zone *layout.Zone
	_, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		z, err := sess.AddZone(req.Name, req.Price, req.Color)
		if err != nil {
			return err
		}
		zone = z
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *service) UpdateZone(ctx context.Context, sessionID, zoneID string, req UpdateZoneRequest) (*layout.Zone, error) {
	var zone *layout.Zone
	_, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		z, err := sess.UpdateZone(zoneID, req.Name, req.Price, req.Color)
		if err != nil {
			return err
		}
		zone = z
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *service) DeleteZone(ctx context.Context, sessionID, zoneID string) (int, error) {
	reassigned := 0
	_, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		n, err := sess.DeleteZone(zoneID)
		if err != nil {
			return err
		}
		reassigned = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reassigned, nil
}
