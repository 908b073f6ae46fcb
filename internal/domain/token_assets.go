package domain

import (
	"fmt"
	"slices"
)

// TokenAssets holds the per-token asset lists. Accepted is ordered by
// priority, first entry highest.
type TokenAssets struct {
	TokenID  TokenID
	Pending  []AssetID
	Accepted []AssetID
}

func (t TokenAssets) IsPending(id AssetID) bool {
	return slices.Contains(t.Pending, id)
}

func (t TokenAssets) IsAccepted(id AssetID) bool {
	return slices.Contains(t.Accepted, id)
}

func (t TokenAssets) Counts() (accepted, pending int) {
	return len(t.Accepted), len(t.Pending)
}

func (t TokenAssets) Clone() TokenAssets {
	t.Pending = slices.Clone(t.Pending)
	t.Accepted = slices.Clone(t.Accepted)
	return t
}

// EnsureAttachable fails when id already sits in either list.
func (t TokenAssets) EnsureAttachable(id AssetID) error {
	if t.IsAccepted(id) {
		return fmt.Errorf("asset %d on token %d: %w", id, t.TokenID, ErrAlreadyAdded)
	}
	if t.IsPending(id) {
		return fmt.Errorf("asset %d on token %d: %w", id, t.TokenID, ErrAlreadyPending)
	}
	return nil
}

func (t *TokenAssets) AddAccepted(id AssetID) error {
	if err := t.EnsureAttachable(id); err != nil {
		return err
	}
	t.Accepted = append(t.Accepted, id)
	return nil
}

func (t *TokenAssets) AddPending(id AssetID) error {
	if err := t.EnsureAttachable(id); err != nil {
		return err
	}
	t.Pending = append(t.Pending, id)
	return nil
}

// Accept moves id from pending to the end of accepted.
func (t *TokenAssets) Accept(id AssetID) error {
	idx := slices.Index(t.Pending, id)
	if idx < 0 {
		return fmt.Errorf("pending asset %d on token %d: %w", id, t.TokenID, ErrAssetNotFound)
	}
	t.Pending = slices.Delete(t.Pending, idx, idx+1)
	t.Accepted = append(t.Accepted, id)
	return nil
}

func (t *TokenAssets) Reject(id AssetID) error {
	idx := slices.Index(t.Pending, id)
	if idx < 0 {
		return fmt.Errorf("pending asset %d on token %d: %w", id, t.TokenID, ErrAssetNotFound)
	}
	t.Pending = slices.Delete(t.Pending, idx, idx+1)
	return nil
}

func (t *TokenAssets) Remove(id AssetID) error {
	idx := slices.Index(t.Accepted, id)
	if idx < 0 {
		return fmt.Errorf("accepted asset %d on token %d: %w", id, t.TokenID, ErrAssetNotFound)
	}
	t.Accepted = slices.Delete(t.Accepted, idx, idx+1)
	return nil
}

// Replace overwrites target with id in place, keeping its priority slot.
// Only accepted entries can be replaced.
func (t *TokenAssets) Replace(id, target AssetID) error {
	if err := t.EnsureAttachable(id); err != nil {
		return err
	}
	if len(t.Accepted) == 0 {
		return fmt.Errorf("token %d: %w", t.TokenID, ErrAcceptedAssetsMissing)
	}
	idx := slices.Index(t.Accepted, target)
	if idx < 0 {
		return fmt.Errorf("asset %d on token %d: %w", target, t.TokenID, ErrInvalidAssetID)
	}
	t.Accepted[idx] = id
	return nil
}

// SetPriority replaces accepted with priorities, which must be a
// permutation of the current accepted list.
func (t *TokenAssets) SetPriority(priorities []AssetID) error {
	if len(priorities) != len(t.Accepted) {
		return fmt.Errorf("got %d ids for %d accepted assets: %w", len(priorities), len(t.Accepted), ErrBadPriorityLength)
	}

	seen := make(map[AssetID]struct{}, len(priorities))
	for _, id := range priorities {
		if !t.IsAccepted(id) {
			return fmt.Errorf("accepted asset %d on token %d: %w", id, t.TokenID, ErrAssetNotFound)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("asset %d: %w", id, ErrDuplicatePriority)
		}
		seen[id] = struct{}{}
	}

	t.Accepted = slices.Clone(priorities)
	return nil
}
