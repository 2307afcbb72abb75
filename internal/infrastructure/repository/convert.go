package repository

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/angulacms/angula/locale"
)

func localizedJSON(m locale.Localized) datatypes.JSON {
	if m == nil {
		m = locale.Localized{}
	}
	b, _ := json.Marshal(m)
	return datatypes.JSON(b)
}

func jsonLocalized(j datatypes.JSON) locale.Localized {
	var m locale.Localized
	if len(j) == 0 {
		return locale.Localized{}
	}
	if err := json.Unmarshal(j, &m); err != nil || m == nil {
		return locale.Localized{}
	}
	return m
}

func mapJSON(m map[string]any) datatypes.JSON {
	if m == nil {
		return nil
	}
	b, _ := json.Marshal(m)
	return datatypes.JSON(b)
}

func jsonMap(j datatypes.JSON) map[string]any {
	if len(j) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(j, &m); err != nil {
		return nil
	}
	return m
}

func strMapJSON(m map[string]string) datatypes.JSON {
	if m == nil {
		return nil
	}
	b, _ := json.Marshal(m)
	return datatypes.JSON(b)
}

func jsonStrMap(j datatypes.JSON) map[string]string {
	if len(j) == 0 {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(j, &m); err != nil {
		return nil
	}
	return m
}
