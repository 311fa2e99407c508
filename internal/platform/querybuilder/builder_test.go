package querybuilder

import (
	"testing"
)

func TestSelectToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("teams").
		Where(
			Eq("owner_user_id", "user-1"),
			Eq("is_active", true),
		).
		OrderBy("created_at DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM teams WHERE owner_user_id = $1 AND is_active = $2 ORDER BY created_at DESC LIMIT 10"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 2 || args[0] != "user-1" || args[1] != true {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectForUpdate(t *testing.T) {
	t.Parallel()

	query, _, err := Select("id").From("users").
		Where(Eq("id", "user-1")).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select for update: %v", err)
	}
	want := "SELECT id FROM users WHERE id = $1 FOR UPDATE"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsertWithReturning(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("divisions").
		Columns("id", "name").
		Values("div-1", "U17 Boys").
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	want := "INSERT INTO divisions (id, name) VALUES ($1, $2) RETURNING *"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateMixedSetAndExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Update("teams").
		Set("name", "Reserves").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "team-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}
	want := "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Reserves" || args[1] != "team-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresConditions(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}

	query, args, err := DeleteFrom("players").Where(Eq("id", "player-1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM players WHERE id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "player-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModelUsesDBTags(t *testing.T) {
	t.Parallel()

	model := struct {
		ID      string `db:"id"`
		Name    string `db:"name"`
		Skipped string `db:"-"`
	}{ID: "p-1", Name: "Ada", Skipped: "x"}

	query, args, err := InsertModel("players", model, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO players (id, name) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInConditionEmptyValues(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matches").
		Where(In("status", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}
	if query != "SELECT * FROM matches WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}
