package utils

import (
	"sort"
	"strings"

	"arogya-service/internal/app/models"

	"github.com/goccy/go-json"
)

// PatientRecordFromMap normalizes one loosely-typed patient document into the
// canonical record shape. Patient sources deliver maps with optional and
// alternately-named fields; everything shape-dependent is resolved here, once.
func PatientRecordFromMap(raw map[string]interface{}) models.PatientRecord {
	record := models.PatientRecord{
		ID:            stringField(raw, "id", "_id"),
		Name:          stringField(raw, "name", "fullName", "patientName"),
		Gender:        stringField(raw, "gender", "sex"),
		BirthDate:     stringField(raw, "dob", "birthDate", "dateOfBirth"),
		Mobile:        stringField(raw, "mobile", "phone", "mobileNumber"),
		Email:         stringField(raw, "email"),
		Address:       stringField(raw, "address"),
		MRN:           stringField(raw, "mrn"),
		ReferenceID:   stringField(raw, "userRefId", "referenceId"),
		AbhaReference: stringField(raw, "abhaRef", "healthId"),
	}
	record.AbhaAddresses = NormalizeAbhaAddresses(abhaAddressList(raw))
	return record
}

// NormalizeAbhaAddresses flattens heterogeneous ABHA address entries (plain
// strings or tagged objects with an address/isPrimary pair) into a
// deduplicated list, primary entries first, then lexicographic by value.
// Duplicate values merge; a primary tag on any occurrence marks the merged
// entry primary. Unrecognized object shapes are kept under a serialized
// fallback label; entries with no usable value are discarded.
func NormalizeAbhaAddresses(raw []interface{}) []models.AbhaAddress {
	index := make(map[string]int)
	var addresses []models.AbhaAddress

	for _, item := range raw {
		address, ok := normalizeAbhaEntry(item)
		if !ok || address.Value == "" {
			continue
		}
		if at, dup := index[address.Value]; dup {
			if address.Primary {
				addresses[at].Primary = true
			}
			continue
		}
		index[address.Value] = len(addresses)
		addresses = append(addresses, address)
	}

	sort.SliceStable(addresses, func(i, j int) bool {
		if addresses[i].Primary != addresses[j].Primary {
			return addresses[i].Primary
		}
		return addresses[i].Value < addresses[j].Value
	})
	return addresses
}

func normalizeAbhaEntry(item interface{}) (models.AbhaAddress, bool) {
	switch v := item.(type) {
	case string:
		value := strings.TrimSpace(v)
		return models.AbhaAddress{Value: value, Label: value}, value != ""
	case map[string]interface{}:
		if value, ok := v["address"].(string); ok {
			value = strings.TrimSpace(value)
			primary, _ := v["isPrimary"].(bool)
			return models.AbhaAddress{Value: value, Label: value, Primary: primary}, value != ""
		}
		// Unrecognized shape: keep a serialized literal instead of dropping it.
		serialized, err := json.Marshal(v)
		if err != nil {
			return models.AbhaAddress{}, false
		}
		return models.AbhaAddress{Value: string(serialized), Label: string(serialized)}, true
	default:
		return models.AbhaAddress{}, false
	}
}

func abhaAddressList(raw map[string]interface{}) []interface{} {
	for _, key := range []string{"abhaAddresses", "phrAddresses"} {
		if list, ok := raw[key].([]interface{}); ok {
			return list
		}
	}
	// Some sources nest the list inside an abha profile object.
	if profile, ok := raw["abhaProfile"].(map[string]interface{}); ok {
		for _, key := range []string{"abhaAddresses", "phrAddresses", "addresses"} {
			if list, ok := profile[key].([]interface{}); ok {
				return list
			}
		}
	}
	return nil
}

func stringField(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
