package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrSenderNameIsRequired    = errors.New("sender name is required")
	ErrSenderPhoneIsRequired   = errors.New("sender phone is required")
	ErrReceiverNameIsRequired  = errors.New("receiver name is required")
	ErrReceiverPhoneIsRequired = errors.New("receiver phone is required")
	ErrBranchIDIsInvalid       = errors.New("branch id must be greater than 0")
	ErrDriverIDIsInvalid       = errors.New("driver id must be greater than 0")
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates sender and receiver contact details, the origin and destination
// branches, and an optional driver assignment.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("Sok Dara", "+855 12 345 678",
//	    "Chan Lina", "+855 98 765 432", 1, 2, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, generator, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s created", created.TrackingCode())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	senderName    string
	senderPhone   string
	receiverName  string
	receiverPhone string

	originBranchID      int64
	destinationBranchID int64
	assignedDriverID    *int64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that all contact details are present, that both branch references
// are positive, and that the driver reference, when given, is positive.
func NewCreateShipmentCommand(
	senderName, senderPhone string,
	receiverName, receiverPhone string,
	originBranchID, destinationBranchID int64,
	assignedDriverID *int64,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setSender(senderName, senderPhone),
		shipmentCommand.setReceiver(receiverName, receiverPhone),
		shipmentCommand.setRoute(originBranchID, destinationBranchID),
		shipmentCommand.setAssignedDriverID(assignedDriverID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// SenderName returns the sender's display name.
func (c CreateShipmentCommand) SenderName() string {
	return c.senderName
}

// SenderPhone returns the sender's phone number.
func (c CreateShipmentCommand) SenderPhone() string {
	return c.senderPhone
}

// ReceiverName returns the receiver's display name.
func (c CreateShipmentCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the receiver's phone number.
func (c CreateShipmentCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// OriginBranchID returns the origin branch reference.
func (c CreateShipmentCommand) OriginBranchID() int64 {
	return c.originBranchID
}

// DestinationBranchID returns the destination branch reference.
func (c CreateShipmentCommand) DestinationBranchID() int64 {
	return c.destinationBranchID
}

// AssignedDriverID returns the optional driver reference.
func (c CreateShipmentCommand) AssignedDriverID() *int64 {
	return c.assignedDriverID
}

func (c *CreateShipmentCommand) setSender(name, phone string) error {
	if name == "" {
		return ErrSenderNameIsRequired
	}
	if phone == "" {
		return ErrSenderPhoneIsRequired
	}

	c.senderName = name
	c.senderPhone = phone
	return nil
}

func (c *CreateShipmentCommand) setReceiver(name, phone string) error {
	if name == "" {
		return ErrReceiverNameIsRequired
	}
	if phone == "" {
		return ErrReceiverPhoneIsRequired
	}

	c.receiverName = name
	c.receiverPhone = phone
	return nil
}

func (c *CreateShipmentCommand) setRoute(originBranchID, destinationBranchID int64) error {
	if originBranchID <= 0 || destinationBranchID <= 0 {
		return ErrBranchIDIsInvalid
	}

	c.originBranchID = originBranchID
	c.destinationBranchID = destinationBranchID
	return nil
}

func (c *CreateShipmentCommand) setAssignedDriverID(assignedDriverID *int64) error {
	if assignedDriverID != nil && *assignedDriverID <= 0 {
		return ErrDriverIDIsInvalid
	}

	c.assignedDriverID = assignedDriverID
	return nil
}
