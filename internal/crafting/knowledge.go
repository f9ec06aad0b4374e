package crafting

import (
	"github.com/osse101/mudcraft/internal/domain"
)

// KnowledgePolicy decides whether a character knows a recipe
type KnowledgePolicy interface {
	Knows(ch *domain.Character, r *domain.Recipe) bool
}

// DiscoveryPolicy resolves knowledge from the recipe's discovery type. Only
// DiscoveryKnown is satisfiable; trainer, scroll and quest discovery report
// unknown until those mechanisms exist.
type DiscoveryPolicy struct{}

// Knows implements KnowledgePolicy
func (DiscoveryPolicy) Knows(_ *domain.Character, r *domain.Recipe) bool {
	switch r.Discovery {
	case domain.DiscoveryKnown:
		return true
	default:
		return false
	}
}

// KnowledgeFunc adapts a function to KnowledgePolicy
type KnowledgeFunc func(ch *domain.Character, r *domain.Recipe) bool

// Knows implements KnowledgePolicy
func (f KnowledgeFunc) Knows(ch *domain.Character, r *domain.Recipe) bool {
	return f(ch, r)
}
