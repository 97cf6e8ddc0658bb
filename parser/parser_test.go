package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/carelog/commands"
	"github.com/c360studio/carelog/model/person"
)

func parse(t *testing.T, input string) commands.Command {
	t.Helper()
	cmd, err := NewRecordParser().Parse(input)
	require.NoError(t, err)
	return cmd
}

func parseError(t *testing.T, input string) error {
	t.Helper()
	_, err := NewRecordParser().Parse(input)
	require.Error(t, err)
	return err
}

func TestParseUnknownCommand(t *testing.T) {
	err := parseError(t, "frobnicate 1")
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, MessageUnknownCommand, pErr.Message)
}

func TestParseAdd(t *testing.T) {
	cmd := parse(t, "add n/Alice Pauline p/91234567 e/alice@example.com a/1 Road t/friend r/Self")
	add, ok := cmd.(*commands.AddCommand)
	require.True(t, ok)

	assert.Equal(t, "Alice Pauline", add.Person.Name().String())
	assert.Equal(t, "91234567", add.Person.Phone().String())
	assert.Equal(t, "alice@example.com", add.Person.Email().String())
	assert.Equal(t, "1 Road", add.Person.Address().String())
	assert.Equal(t, "Self", add.Person.Relationship().String())

	friend, err := person.NewTag("friend")
	require.NoError(t, err)
	assert.True(t, add.Person.Tags(person.CategoryGeneral).Contains(friend))
	assert.True(t, add.Person.Appointment().IsDefault())
}

func TestParseAddMissingRequiredPrefix(t *testing.T) {
	err := parseError(t, "add n/Alice Pauline p/91234567 e/alice@example.com")
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Message, commands.AddUsage)
}

func TestParseAddDuplicatePrefix(t *testing.T) {
	err := parseError(t, "add n/Alice n/Bob p/91234567 e/a@example.com a/1 Road")
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Message, "n/")
}

// A field validation failure surfaces the value type's own constraint
// message, verbatim.
func TestParseAddInvalidFieldKeepsConstraintMessage(t *testing.T) {
	err := parseError(t, "add n/Alice p/+651234 e/a@example.com a/1 Road")
	var vErr *person.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, person.PhoneMessageConstraints, vErr.Message)
}

func TestParseEdit(t *testing.T) {
	cmd := parse(t, "edit 2 p/87654321 a/New Address")
	edit, ok := cmd.(*commands.EditCommand)
	require.True(t, ok)

	assert.Equal(t, 2, edit.Index)
	require.NotNil(t, edit.Phone)
	assert.Equal(t, "87654321", edit.Phone.String())
	require.NotNil(t, edit.Address)
	assert.Equal(t, "New Address", edit.Address.String())
	assert.Nil(t, edit.Name)
	assert.Nil(t, edit.Email)
}

func TestParseEditRequiresAField(t *testing.T) {
	err := parseError(t, "edit 2")
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Message, commands.EditUsage)
}

func TestParseIndexErrors(t *testing.T) {
	for _, input := range []string{"delete x", "delete 0", "delete -3", "delete"} {
		err := parseError(t, input)
		var pErr *ParseError
		require.ErrorAs(t, err, &pErr, "input %q", input)
		assert.Equal(t, MessageInvalidIndex, pErr.Message, "input %q", input)
	}
}

func TestParseSchedule(t *testing.T) {
	cmd := parse(t, "schedule 1 18-03-2025 10:00 Checkup")
	schedule, ok := cmd.(*commands.ScheduleCommand)
	require.True(t, ok)

	assert.Equal(t, 1, schedule.Index)
	assert.Equal(t, "18-03-2025 10:00", schedule.Appointment.DateTime().String())
	assert.Equal(t, "Checkup", schedule.Appointment.Description())
}

func TestParseScheduleMalformedDate(t *testing.T) {
	err := parseError(t, "schedule 1 2025-03-18 10:00 Checkup")
	var vErr *person.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, person.AppointmentMessageConstraints, vErr.Message)
}

func TestParseTag(t *testing.T) {
	cmd := parse(t, "tag 1 ta/Peanuts ta/Shellfish tc/Asthma td/old")
	tag, ok := cmd.(*commands.TagCommand)
	require.True(t, ok)

	assert.Equal(t, 1, tag.Index)
	assert.Equal(t, 2, tag.Allergies.Len())
	assert.Equal(t, 1, tag.Conditions.Len())
	assert.Equal(t, 0, tag.Insurances.Len())
	assert.Equal(t, 1, tag.Deletes.Len())
	assert.Equal(t, 0, tag.Edits.Len())
}

func TestParseTagRequiresAGroup(t *testing.T) {
	err := parseError(t, "tag 1")
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, MessageEmptyTagCommand, pErr.Message)
}

func TestParseTagInvalidToken(t *testing.T) {
	err := parseError(t, "tag 1 ta/#bad")
	var vErr *person.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, person.TagMessageConstraints, vErr.Message)
}

func TestParseFind(t *testing.T) {
	cmd := parse(t, "find alice benson")
	find, ok := cmd.(*commands.FindCommand)
	require.True(t, ok)
	assert.Equal(t, []string{"alice", "benson"}, find.Keywords)

	err := parseError(t, "find")
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Message, commands.FindUsage)
}

func TestParseListKeepsRawArguments(t *testing.T) {
	// The list grammar defers operand rejection to execute time.
	cmd := parse(t, "list extra")
	list, ok := cmd.(*commands.ListCommand)
	require.True(t, ok)
	assert.Equal(t, "extra", strings.TrimSpace(list.Args))
}

func TestParseSimpleKeywords(t *testing.T) {
	if _, ok := parse(t, "help").(*commands.HelpCommand); !ok {
		t.Error("help should parse to HelpCommand")
	}
	if _, ok := parse(t, "exit").(*commands.ExitCommand); !ok {
		t.Error("exit should parse to ExitCommand")
	}
	if archive, ok := parse(t, "archive 2").(*commands.ArchiveCommand); assert.True(t, ok) {
		assert.Equal(t, 2, archive.Index)
	}
	if unarchive, ok := parse(t, "unarchive 1").(*commands.UnarchiveCommand); assert.True(t, ok) {
		assert.Equal(t, 1, unarchive.Index)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := NewRecordParser().Parse("")
	assert.ErrorIs(t, err, errUnknownCommand)

	_, err = NewRecordParser().Parse("   \t  ")
	assert.ErrorIs(t, err, errUnknownCommand)
}
