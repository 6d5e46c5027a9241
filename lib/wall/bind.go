package wall

// BindVariables looks up the variable of every Variable wall. It must be
// called before the first Step and may be called again to rebind walls to a
// different set of variables. Errors wrap ErrUnknownVariable or
// ErrInvalidVariableStyle.
func (ws *WallSet) BindVariables(vars Resolver) error {
	for m := 0; m < ws.n; m++ {
		w := &ws.walls[m]
		if w.Mode != Variable {
			continue
		}
		w.bound = false

		h, ok := vars.Find(w.VarName)
		if !ok {
			return &VariableError{w.Name(), w.VarName, ErrUnknownVariable}
		}
		if !vars.IsEqualStyle(h) {
			return &VariableError{w.Name(), w.VarName, ErrInvalidVariableStyle}
		}

		w.handle, w.bound = h, true
		ws.log.Debug().Str("wall", w.Name()).Str("variable", w.VarName).
			Int("handle", h).Msg("bound wall variable")
	}
	return nil
}

// Diagnostics warns if rigid bodies are being integrated in the same run.
// Reflecting walls mirror individual particles, so the dynamics of rigid
// bodies which hit them are not computed correctly. It returns true if a
// warning was emitted.
func (ws *WallSet) Diagnostics(rigidBodies int) bool {
	if rigidBodies <= 0 {
		return false
	}
	ws.log.Warn().Int("rigid_bodies", rigidBodies).
		Msg("Should not allow rigid bodies to bounce off reflecting walls")
	return true
}
