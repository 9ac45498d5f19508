//go:build unix

package wayland

// Wire bindings for the zwlr_data_control_v1 protocol family, written
// against deedles.dev/wl/wire in the same shape as core protocol bindings.

import (
	"fmt"
	"os"

	wl "deedles.dev/wl/client"
	"deedles.dev/wl/wire"
)

const (
	DataControlManagerInterface = "zwlr_data_control_manager_v1"
	DataControlManagerVersion   = 2
)

// DataControlManager creates per-seat data device controls.
type DataControlManager struct {
	OnDelete func()

	state wire.State
	id    uint32
}

func BindDataControlManager(state wire.State, registry wire.Binder, name, version uint32) *DataControlManager {
	obj := &DataControlManager{state: state}
	state.Add(obj)
	registry.Bind(name, wire.NewID{Interface: DataControlManagerInterface, Version: version, ID: obj.ID()})
	return obj
}

func (obj *DataControlManager) State() wire.State { return obj.state }
func (obj *DataControlManager) ID() uint32        { return obj.id }
func (obj *DataControlManager) SetID(id uint32)   { obj.id = id }
func (obj *DataControlManager) Interface() string { return DataControlManagerInterface }
func (obj *DataControlManager) Version() uint32   { return DataControlManagerVersion }

func (obj *DataControlManager) String() string {
	return fmt.Sprintf("%v(%v)", DataControlManagerInterface, obj.id)
}

func (obj *DataControlManager) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataControlManager) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{Interface: DataControlManagerInterface, Type: "event", Op: msg.Op()}
}

func (obj *DataControlManager) MethodName(uint16) string { return "unknown method" }

func (obj *DataControlManager) CreateDataSource() *DataControlSource {
	builder := wire.NewMessage(obj, 0)

	id := &DataControlSource{state: obj.state}
	obj.state.Add(id)
	builder.WriteObject(id)

	builder.Method = "create_data_source"
	builder.Args = []any{id}
	obj.state.Enqueue(builder)
	return id
}

func (obj *DataControlManager) GetDataDevice(seat *wl.Seat) *DataControlDevice {
	builder := wire.NewMessage(obj, 1)

	id := &DataControlDevice{state: obj.state}
	obj.state.Add(id)
	builder.WriteObject(id)
	builder.WriteObject(seat)

	builder.Method = "get_data_device"
	builder.Args = []any{id, seat}
	obj.state.Enqueue(builder)
	return id
}

func (obj *DataControlManager) Destroy() {
	builder := wire.NewMessage(obj, 2)
	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
}

const (
	DataControlDeviceInterface = "zwlr_data_control_device_v1"
	DataControlDeviceVersion   = 2
)

// DataControlDeviceListener responds to selection announcements for one
// seat. Offer introduction (DataOffer) always precedes the Selection or
// PrimarySelection event naming that offer.
type DataControlDeviceListener interface {
	DataOffer(id *DataControlOffer)
	Selection(id *DataControlOffer)
	Finished()
	PrimarySelection(id *DataControlOffer)
}

// DataControlDevice manages one seat's selections.
type DataControlDevice struct {
	Listener DataControlDeviceListener
	OnDelete func()

	state wire.State
	id    uint32
}

func (obj *DataControlDevice) State() wire.State { return obj.state }
func (obj *DataControlDevice) ID() uint32        { return obj.id }
func (obj *DataControlDevice) SetID(id uint32)   { obj.id = id }
func (obj *DataControlDevice) Interface() string { return DataControlDeviceInterface }
func (obj *DataControlDevice) Version() uint32   { return DataControlDeviceVersion }

func (obj *DataControlDevice) String() string {
	return fmt.Sprintf("%v(%v)", DataControlDeviceInterface, obj.id)
}

func (obj *DataControlDevice) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataControlDevice) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0: // data_offer
		id := &DataControlOffer{state: obj.state}
		id.SetID(msg.ReadUint())
		obj.state.Add(id)

		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.DataOffer(id)
		}
		return nil

	case 1: // selection
		id, _ := obj.state.Get(msg.ReadUint()).(*DataControlOffer)
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.Selection(id)
		}
		return nil

	case 2: // finished
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.Finished()
		}
		return nil

	case 3: // primary_selection
		id, _ := obj.state.Get(msg.ReadUint()).(*DataControlOffer)
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.PrimarySelection(id)
		}
		return nil
	}

	return wire.UnknownOpError{Interface: DataControlDeviceInterface, Type: "event", Op: msg.Op()}
}

func (obj *DataControlDevice) MethodName(op uint16) string {
	switch op {
	case 0:
		return "data_offer"
	case 1:
		return "selection"
	case 2:
		return "finished"
	case 3:
		return "primary_selection"
	}
	return "unknown method"
}

// SetSelection sets the seat's selection from source. A source may not be
// reused for a second set_selection or set_primary_selection request.
func (obj *DataControlDevice) SetSelection(source *DataControlSource) {
	builder := wire.NewMessage(obj, 0)
	builder.WriteObject(source)
	builder.Method = "set_selection"
	builder.Args = []any{source}
	obj.state.Enqueue(builder)
}

func (obj *DataControlDevice) Destroy() {
	builder := wire.NewMessage(obj, 1)
	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
}

// SetPrimarySelection is ignored by compositors without primary-selection
// support; the protocol only carries it at device version >= 2.
func (obj *DataControlDevice) SetPrimarySelection(source *DataControlSource) {
	builder := wire.NewMessage(obj, 2)
	builder.WriteObject(source)
	builder.Method = "set_primary_selection"
	builder.Args = []any{source}
	obj.state.Enqueue(builder)
}

const (
	DataControlSourceInterface = "zwlr_data_control_source_v1"
	DataControlSourceVersion   = 1
)

// DataControlSourceListener serves the offered data: Send asks for the
// payload in mimeType over fd (close it when done); Cancelled means the
// source was replaced and should be destroyed.
type DataControlSourceListener interface {
	Send(mimeType string, fd *os.File)
	Cancelled()
}

// DataControlSource is the source side of a data offer.
type DataControlSource struct {
	Listener DataControlSourceListener
	OnDelete func()

	state wire.State
	id    uint32
}

func (obj *DataControlSource) State() wire.State { return obj.state }
func (obj *DataControlSource) ID() uint32        { return obj.id }
func (obj *DataControlSource) SetID(id uint32)   { obj.id = id }
func (obj *DataControlSource) Interface() string { return DataControlSourceInterface }
func (obj *DataControlSource) Version() uint32   { return DataControlSourceVersion }

func (obj *DataControlSource) String() string {
	return fmt.Sprintf("%v(%v)", DataControlSourceInterface, obj.id)
}

func (obj *DataControlSource) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataControlSource) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0: // send
		mimeType := msg.ReadString()
		fd := msg.ReadFile()
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.Send(mimeType, fd)
		}
		return nil

	case 1: // cancelled
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.Cancelled()
		}
		return nil
	}

	return wire.UnknownOpError{Interface: DataControlSourceInterface, Type: "event", Op: msg.Op()}
}

func (obj *DataControlSource) MethodName(op uint16) string {
	switch op {
	case 0:
		return "send"
	case 1:
		return "cancelled"
	}
	return "unknown method"
}

// Offer adds a MIME type to the set advertised to targets. Must precede
// the set_selection request using this source.
func (obj *DataControlSource) Offer(mimeType string) {
	builder := wire.NewMessage(obj, 0)
	builder.WriteString(mimeType)
	builder.Method = "offer"
	builder.Args = []any{mimeType}
	obj.state.Enqueue(builder)
}

func (obj *DataControlSource) Destroy() {
	builder := wire.NewMessage(obj, 1)
	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
}

const (
	DataControlOfferInterface = "zwlr_data_control_offer_v1"
	DataControlOfferVersion   = 1
)

// DataControlOfferListener receives one Offer event per MIME type
// available on the offer, immediately after the offer is introduced.
type DataControlOfferListener interface {
	Offer(mimeType string)
}

// DataControlOffer is a piece of data offered for transfer by another
// client.
type DataControlOffer struct {
	Listener DataControlOfferListener
	OnDelete func()

	state wire.State
	id    uint32
}

func (obj *DataControlOffer) State() wire.State { return obj.state }
func (obj *DataControlOffer) ID() uint32        { return obj.id }
func (obj *DataControlOffer) SetID(id uint32)   { obj.id = id }
func (obj *DataControlOffer) Interface() string { return DataControlOfferInterface }
func (obj *DataControlOffer) Version() uint32   { return DataControlOfferVersion }

func (obj *DataControlOffer) String() string {
	return fmt.Sprintf("%v(%v)", DataControlOfferInterface, obj.id)
}

func (obj *DataControlOffer) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataControlOffer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0: // offer
		mimeType := msg.ReadString()
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.Offer(mimeType)
		}
		return nil
	}

	return wire.UnknownOpError{Interface: DataControlOfferInterface, Type: "event", Op: msg.Op()}
}

func (obj *DataControlOffer) MethodName(op uint16) string {
	switch op {
	case 0:
		return "offer"
	}
	return "unknown method"
}

// Receive asks the source client to write the payload in mimeType to fd
// and close it; we read our end of the pipe until EOF.
func (obj *DataControlOffer) Receive(mimeType string, fd *os.File) {
	builder := wire.NewMessage(obj, 0)
	builder.WriteString(mimeType)
	builder.WriteFile(fd)
	builder.Method = "receive"
	builder.Args = []any{mimeType, fd}
	obj.state.Enqueue(builder)
}

func (obj *DataControlOffer) Destroy() {
	builder := wire.NewMessage(obj, 1)
	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
}
