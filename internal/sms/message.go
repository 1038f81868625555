package sms

import (
	"fmt"

	"weddingrsvp/internal/models"
)

// BuildInviteText renders the outbound invitation message for an invite.
// It is a pure function of the record: the dashboard's copy-to-clipboard
// preview and the Twilio send path both call it, so the text is always
// byte-identical for the same invite.
func BuildInviteText(invite *models.SMSInvite) string {
	seats := invite.Seats()

	if invite.Language() == models.LanguageSpanish {
		seatsText := fmt.Sprintf("%d lugares reservados para ti y tus invitados.", seats)
		if seats == 1 {
			seatsText = "1 lugar reservado para ti."
		}
		return fmt.Sprintf(`Hola %s 🤍

Estamos contando los dias para nuestra boda y nos encantaria que fueras parte de este momento tan especial.

Tenemos %s

Todos los detalles estan disponibles aqui:
%s

Por favor haznos saber si planeas asistir antes del 15/03/2026.

Más adelante, cerca de la fecha de la boda, te contactaremos para re-confirmar.`, invite.GuestName, seatsText, invite.InviteURL)
	}

	return fmt.Sprintf(`Hello %s 🤍

We are counting down the days to our wedding and would love for you to be part of this special moment.

We have reserved %d seat(s) for you.

All the details are available here:
%s

Please let us know if you are planning to attend by 3/15/2026.

We will follow up later for a final confirmation closer to the wedding date.`, invite.GuestName, seats, invite.InviteURL)
}
