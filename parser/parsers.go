package parser

import (
	"strings"

	"github.com/c360studio/carelog/commands"
	"github.com/c360studio/carelog/model/person"
)

func parseAdd(args string) (*commands.AddCommand, error) {
	m := Tokenize(args,
		PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag, PrefixRelationship)
	if !m.ArePresent(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || m.Preamble() != "" {
		return nil, invalidFormat(commands.AddUsage)
	}
	if err := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRelationship); err != nil {
		return nil, err
	}

	rawName, _ := m.Value(PrefixName)
	name, err := person.NewName(rawName)
	if err != nil {
		return nil, err
	}
	rawPhone, _ := m.Value(PrefixPhone)
	phone, err := person.NewPhone(rawPhone)
	if err != nil {
		return nil, err
	}
	rawEmail, _ := m.Value(PrefixEmail)
	email, err := person.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	rawAddress, _ := m.Value(PrefixAddress)
	address, err := person.NewAddress(rawAddress)
	if err != nil {
		return nil, err
	}
	tags, err := parseTagSet(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	p := person.NewPerson(name, phone, email, address, tags)
	if raw, ok := m.Value(PrefixRelationship); ok {
		relationship, err := person.NewRelationship(raw)
		if err != nil {
			return nil, err
		}
		p = p.WithRelationship(relationship)
	}
	return &commands.AddCommand{Person: p}, nil
}

func parseEdit(args string) (*commands.EditCommand, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, err
	}
	if err := m.VerifyNoDuplicates(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}

	cmd := &commands.EditCommand{Index: index}
	edited := false
	if raw, ok := m.Value(PrefixName); ok {
		name, err := person.NewName(raw)
		if err != nil {
			return nil, err
		}
		cmd.Name, edited = &name, true
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		phone, err := person.NewPhone(raw)
		if err != nil {
			return nil, err
		}
		cmd.Phone, edited = &phone, true
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		email, err := person.NewEmail(raw)
		if err != nil {
			return nil, err
		}
		cmd.Email, edited = &email, true
	}
	if raw, ok := m.Value(PrefixAddress); ok {
		address, err := person.NewAddress(raw)
		if err != nil {
			return nil, err
		}
		cmd.Address, edited = &address, true
	}
	if !edited {
		return nil, invalidFormat(commands.EditUsage)
	}
	return cmd, nil
}

func parseDelete(args string) (*commands.DeleteCommand, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &commands.DeleteCommand{Index: index}, nil
}

func parseFind(args string) (*commands.FindCommand, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindUsage)
	}
	return &commands.FindCommand{Keywords: keywords}, nil
}

func parseSchedule(args string) (*commands.ScheduleCommand, error) {
	trimmed := strings.TrimSpace(args)
	fields := strings.SplitN(trimmed, " ", 2)
	if len(fields) < 2 {
		return nil, invalidFormat(commands.ScheduleUsage)
	}
	index, err := ParseIndex(fields[0])
	if err != nil {
		return nil, err
	}
	appointment, err := person.NewAppointment(fields[1])
	if err != nil {
		return nil, err
	}
	return &commands.ScheduleCommand{Index: index, Appointment: appointment}, nil
}

func parseTag(args string) (*commands.TagCommand, error) {
	m := Tokenize(args,
		PrefixAllergy, PrefixCondition, PrefixInsurance, PrefixTagDelete, PrefixTagEdit)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, err
	}

	allergies, err := parseTagSet(m.AllValues(PrefixAllergy))
	if err != nil {
		return nil, err
	}
	conditions, err := parseTagSet(m.AllValues(PrefixCondition))
	if err != nil {
		return nil, err
	}
	insurances, err := parseTagSet(m.AllValues(PrefixInsurance))
	if err != nil {
		return nil, err
	}
	deletes, err := parseTagSet(m.AllValues(PrefixTagDelete))
	if err != nil {
		return nil, err
	}
	edits, err := parseTagSet(m.AllValues(PrefixTagEdit))
	if err != nil {
		return nil, err
	}

	if allergies.Len()+conditions.Len()+insurances.Len()+deletes.Len()+edits.Len() == 0 {
		return nil, &ParseError{Message: MessageEmptyTagCommand}
	}
	return &commands.TagCommand{
		Index:      index,
		Allergies:  allergies,
		Conditions: conditions,
		Insurances: insurances,
		Deletes:    deletes,
		Edits:      edits,
	}, nil
}

func parseArchive(args string) (*commands.ArchiveCommand, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &commands.ArchiveCommand{Index: index}, nil
}

func parseUnarchive(args string) (*commands.UnarchiveCommand, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &commands.UnarchiveCommand{Index: index}, nil
}

// parseTagSet converts raw repeated prefix values into a tag set.
func parseTagSet(raws []string) (person.TagSet, error) {
	set := person.NewTagSet()
	for _, raw := range raws {
		t, err := person.NewTag(raw)
		if err != nil {
			return nil, err
		}
		set[t] = struct{}{}
	}
	return set, nil
}
