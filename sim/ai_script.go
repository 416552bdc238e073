package sim

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// enemyScript runs a tengo program once per enemy per frame. The program
// reads the globals enemy_x, player_x and speed and assigns dx.
type enemyScript struct {
	name     string
	compiled *tengo.Compiled
}

var enemyScriptGlobals = []string{"enemy_x", "player_x", "speed", "dx"}

func compileEnemyScript(name string, src []byte) (*enemyScript, error) {
	script := tengo.NewScript(src)
	for _, g := range enemyScriptGlobals {
		if err := script.Add(g, 0.0); err != nil {
			return nil, err
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &enemyScript{name: name, compiled: compiled}, nil
}

func (rt *enemyScript) step(enemyX, playerX, speed float64) (float64, error) {
	if rt == nil || rt.compiled == nil {
		return 0, fmt.Errorf("nil enemy script")
	}
	if err := rt.compiled.Set("enemy_x", enemyX); err != nil {
		return 0, err
	}
	if err := rt.compiled.Set("player_x", playerX); err != nil {
		return 0, err
	}
	if err := rt.compiled.Set("speed", speed); err != nil {
		return 0, err
	}
	if err := rt.compiled.Set("dx", 0.0); err != nil {
		return 0, err
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, err
	}
	return rt.compiled.Get("dx").Float(), nil
}
