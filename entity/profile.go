package entity

// Profile references interests and flairs by name, not by ID. A rename
// of an interest or flair is not guarded against here.
type Profile struct {
	ID         *uint64  `json:"id,omitempty"`
	Username   *string  `json:"username,omitempty"`
	FirstName  *string  `json:"first_name,omitempty"`
	LastName   *string  `json:"last_name,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Title      *string  `json:"title,omitempty"`
	Picture    *string  `json:"picture,omitempty"`
	Github     *string  `json:"github,omitempty"`
	Facebook   *string  `json:"facebook,omitempty"`
	Instagram  *string  `json:"instagram,omitempty"`
	Interests  []string `json:"interests,omitempty"`
	Flairs     []string `json:"flairs,omitempty"`
	CreateTime *uint64  `json:"create_time,omitempty"`
	UpdateTime *uint64  `json:"update_time,omitempty"`
}

func (e *Profile) GetID() uint64 {
	if e != nil && e.ID != nil {
		return *e.ID
	}
	return 0
}

func (e *Profile) GetUsername() string {
	if e != nil && e.Username != nil {
		return *e.Username
	}
	return ""
}

func (e *Profile) GetFirstName() string {
	if e != nil && e.FirstName != nil {
		return *e.FirstName
	}
	return ""
}

func (e *Profile) GetLastName() string {
	if e != nil && e.LastName != nil {
		return *e.LastName
	}
	return ""
}

func (e *Profile) GetBio() string {
	if e != nil && e.Bio != nil {
		return *e.Bio
	}
	return ""
}

func (e *Profile) GetTitle() string {
	if e != nil && e.Title != nil {
		return *e.Title
	}
	return ""
}

func (e *Profile) GetPicture() string {
	if e != nil && e.Picture != nil {
		return *e.Picture
	}
	return ""
}

func (e *Profile) GetGithub() string {
	if e != nil && e.Github != nil {
		return *e.Github
	}
	return ""
}

func (e *Profile) GetFacebook() string {
	if e != nil && e.Facebook != nil {
		return *e.Facebook
	}
	return ""
}

func (e *Profile) GetInstagram() string {
	if e != nil && e.Instagram != nil {
		return *e.Instagram
	}
	return ""
}

func (e *Profile) GetInterests() []string {
	if e != nil && e.Interests != nil {
		return e.Interests
	}
	return nil
}

func (e *Profile) GetFlairs() []string {
	if e != nil && e.Flairs != nil {
		return e.Flairs
	}
	return nil
}

func (e *Profile) GetCreateTime() uint64 {
	if e != nil && e.CreateTime != nil {
		return *e.CreateTime
	}
	return 0
}

func (e *Profile) GetUpdateTime() uint64 {
	if e != nil && e.UpdateTime != nil {
		return *e.UpdateTime
	}
	return 0
}
