package commands

import (
	"github.com/c360studio/carelog/model"
	"github.com/c360studio/carelog/model/person"
)

// ScheduleCommandWord is the keyword that invokes ScheduleCommand.
const ScheduleCommandWord = "schedule"

// ScheduleUsage is the fixed usage string for the schedule command.
const ScheduleUsage = "Usage: schedule INDEX DD-MM-YYYY HH:MM [DESCRIPTION]"

// MessageScheduleSuccess is the success message for the schedule command.
const MessageScheduleSuccess = "Appointment scheduled successfully"

// ScheduleCommand replaces the appointment of the patient at Index in the
// filtered view.
type ScheduleCommand struct {
	Index       int
	Appointment person.Appointment
}

// Execute substitutes the patient with the new appointment.
func (c *ScheduleCommand) Execute(m *model.Manager) (Result, error) {
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	scheduled := target.WithAppointment(c.Appointment)
	if err := m.SetPerson(target, scheduled); err != nil {
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: MessageScheduleSuccess}, nil
}
