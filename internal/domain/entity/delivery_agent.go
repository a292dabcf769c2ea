// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgentStatus represents the availability of a delivery agent.
type AgentStatus string

const (
	// AgentAvailable means the agent can take a new order.
	AgentAvailable AgentStatus = "AVAILABLE"
	// AgentBusy means the agent is out on a delivery.
	AgentBusy AgentStatus = "BUSY"
	// AgentOffline means the agent is not working.
	AgentOffline AgentStatus = "OFFLINE"
)

// String returns the string representation of the AgentStatus.
func (s AgentStatus) String() string {
	return string(s)
}

// IsValid checks if the AgentStatus is a valid value.
func (s AgentStatus) IsValid() bool {
	switch s {
	case AgentAvailable, AgentBusy, AgentOffline:
		return true
	default:
		return false
	}
}

// DeliveryAgent is a courier who can be assigned to orders.
// Status moves between AVAILABLE, BUSY and OFFLINE on assignment and completion.
type DeliveryAgent struct {
	ID           uuid.UUID   // The unique identifier for the agent.
	Name         string      // The agent's display name.
	Email        string      // Login identifier, unique across agents.
	PasswordHash string      // The bcrypt hash of the agent's password.
	Phone        string      // Contact phone number.
	Status       AgentStatus // Current availability.
	CreatedAt    time.Time   // Timestamp of when this agent was registered.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}
